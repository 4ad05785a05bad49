package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailhaus/housekeep/internal/cli/output"
	"github.com/mailhaus/housekeep/internal/purge"
)

// CountsOptions holds options for the counts command.
type CountsOptions struct {
	State string
}

// CountsOutput is the JSON output for the counts command.
type CountsOutput struct {
	State      string            `json:"state"`
	Properties []PropertyOutput  `json:"properties"`
	Counts     []TableCountEntry `json:"counts"`
	Total      int64             `json:"total"`
}

// PropertyOutput is one matched property in JSON output.
type PropertyOutput struct {
	ID      int64  `json:"property_id"`
	RadarID string `json:"radar_id"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// TableCountEntry is one per-table count in JSON output.
type TableCountEntry struct {
	Table   string `json:"table"`
	Records int64  `json:"records"`
}

// NewCountsCommand creates the counts command.
func NewCountsCommand() *cobra.Command {
	opts := &CountsOptions{}
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Report record counts for properties in a state",
		Long: `List the properties located in a US state and the number of records
referencing them in each related table. Read-only; shares the table order
with purge, so the report matches what purge would delete.`,
		Example: `  # Counts for the configured state
  housekeep counts

  # Machine-readable output
  housekeep counts --state AK --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCounts(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.State, "state", "", "Two-letter state code (overrides config)")

	return cmd
}

func runCounts(cmd *cobra.Command, opts *CountsOptions) error {
	cmdCtx, cleanup, err := NewConnectedContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	r := cmdCtx.Renderer

	state, err := resolveState(cmdCtx.Cfg, opts.State)
	if err != nil {
		return err
	}

	purger := purge.New(cmdCtx.DB, cmdCtx.Logger)

	props, err := purger.FindProperties(ctx, state)
	if err != nil {
		return err
	}

	var counts []purge.TableCount
	if len(props) > 0 {
		counts, err = purger.CountRelated(ctx, cmdCtx.DB, purge.PropertyIDs(props))
		if err != nil {
			return err
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(buildCountsOutput(state, props, counts))
	}

	if len(props) == 0 {
		r.Printf("No properties found in %s.\n", state)
		return nil
	}

	r.Printf("Found %d properties in %s:\n", len(props), state)
	renderProperties(r, props)

	r.Heading("Related records:")
	renderCounts(r, counts)

	return nil
}

func buildCountsOutput(state string, props []purge.Property, counts []purge.TableCount) CountsOutput {
	out := CountsOutput{
		State:      state,
		Properties: make([]PropertyOutput, 0, len(props)),
		Counts:     make([]TableCountEntry, 0, len(counts)),
		Total:      purge.Total(counts),
	}
	for _, p := range props {
		out.Properties = append(out.Properties, PropertyOutput{
			ID:      p.ID,
			RadarID: p.RadarID,
			Address: p.Address,
			City:    p.City,
			State:   p.State,
		})
	}
	for _, c := range counts {
		out.Counts = append(out.Counts, TableCountEntry{Table: c.Table, Records: c.Count})
	}
	return out
}
