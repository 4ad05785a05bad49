package commands

import (
	"strconv"

	"github.com/mailhaus/housekeep/internal/cli/output"
	"github.com/mailhaus/housekeep/internal/purge"
)

// renderProperties prints the matched properties as a table.
func renderProperties(r *output.Renderer, props []purge.Property) {
	rows := make([][]string, len(props))
	for i, p := range props {
		rows[i] = []string{
			strconv.FormatInt(p.ID, 10),
			p.RadarID,
			p.Address,
			p.City,
			p.State,
		}
	}
	r.Table([]string{"ID", "RADAR ID", "ADDRESS", "CITY", "STATE"}, rows)
}

// renderCounts prints a per-table record count report.
func renderCounts(r *output.Renderer, counts []purge.TableCount) {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Table, strconv.FormatInt(c.Count, 10)}
	}
	r.Table([]string{"TABLE", "RECORDS"}, rows)
}
