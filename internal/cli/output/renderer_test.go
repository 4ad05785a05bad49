package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		isTTY    bool
		expected Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"explicit text piped", ModeText, false, ModeText},
		{"empty mode defaults to auto", "", false, ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.expected, r.EffectiveMode())
		})
	}
}

func TestMessages(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Success("committed")
	r.Warning("nothing to delete")
	r.Error("connection refused")
	r.Printf("Found %d properties\n", 2)

	assert.Contains(t, out.String(), "✓ committed")
	assert.Contains(t, out.String(), "⚠ nothing to delete")
	assert.Contains(t, out.String(), "Found 2 properties")
	assert.Contains(t, errOut.String(), "✗ connection refused")
}

func TestMessages_NoANSIWhenPiped(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)
	r.Success("done")
	assert.NotContains(t, out.String(), "\x1b[", "piped output must not carry escape codes")
}

func TestJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"loans": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["loans"])
}

func TestTable(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)

	r.Table([]string{"TABLE", "RECORDS"}, [][]string{
		{"loans", "3"},
		{"properties", "2"},
	})

	s := out.String()
	assert.Contains(t, s, "loans")
	assert.Contains(t, s, "properties")
	assert.Contains(t, s, "RECORDS")
}

func TestTable_Markdown(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Table([]string{"TABLE"}, [][]string{{"loans"}})

	assert.Contains(t, out.String(), "|", "markdown tables are pipe-delimited")
}
