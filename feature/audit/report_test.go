package audit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gear-auditor/core/reconcile"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAudit() *Audit {
	return &Audit{
		RunID:     "run-1",
		Character: "player",
		Gearset:   "thf.lua",
		Report: &reconcile.Report{
			OK:       []reconcile.Result{{Name: "Vajra", Expected: "inventory", ID: 200, Status: reconcile.StatusOK}},
			WrongBag: []reconcile.Result{{Name: "Thief's Knife", Expected: "wardrobe2", ID: 100, Status: reconcile.StatusWrongBag, Actual: []string{"wardrobe1", "safe"}}},
			Missing:  []reconcile.Result{{Name: "Odium", Expected: "?", ID: 400, Status: reconcile.StatusMissing}},
			Unknown:  []reconcile.Result{{Name: "Vajara", Expected: "inventory", Status: reconcile.StatusUnknown, Suggestion: "Vajra"}},
			Summary:  reconcile.Summary{Total: 4, OK: 1, WrongBag: 1, Missing: 1, Unknown: 1},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormat_Extension(t *testing.T) {
	assert.Equal(t, "txt", FormatText.Extension())
	assert.Equal(t, "json", FormatJSON.Extension())
	assert.Equal(t, "yaml", FormatYAML.Extension())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleAudit().Report))
	out := buf.String()

	assert.Contains(t, out, "OK           (1)\n")
	assert.Contains(t, out, "WRONG BAG    (1)  -- item exists but in a different bag\n")
	assert.Contains(t, out, "MISSING      (1)  -- not found in any bag\n")
	assert.Contains(t, out, "UNKNOWN NAME (1)  -- not found in items database\n")

	assert.Contains(t, out, `[id=   200]  'Vajra'`)
	assert.Contains(t, out, `expected='wardrobe2'  found_in=['wardrobe1', 'safe']`)
	assert.Contains(t, out, `(expected bag=?)`)
	assert.Contains(t, out, `did you mean 'Vajra'?`)

	assert.Contains(t, out, "  Total references : 4\n")
	assert.Contains(t, out, "  Unknown name     : 1\n")

	// Sections appear in a fixed order.
	assert.Less(t, strings.Index(out, "OK "), strings.Index(out, "WRONG BAG"))
	assert.Less(t, strings.Index(out, "WRONG BAG"), strings.Index(out, "MISSING"))
	assert.Less(t, strings.Index(out, "MISSING"), strings.Index(out, "UNKNOWN NAME"))
	assert.Less(t, strings.Index(out, "UNKNOWN NAME"), strings.Index(out, "Summary:"))
}

func TestRenderText_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, &reconcile.Report{}))
	assert.Contains(t, buf.String(), "OK           (0)")
	assert.Contains(t, buf.String(), "  Total references : 0\n")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleAudit(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])

	report := decoded["report"].(map[string]any)
	summary := report["summary"].(map[string]any)
	assert.Equal(t, float64(4), summary["total"])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleAudit(), FormatYAML))

	var decoded struct {
		RunID  string `yaml:"run_id"`
		Report struct {
			WrongBag []struct {
				Name   string   `yaml:"name"`
				Actual []string `yaml:"actual"`
			} `yaml:"wrong_bag"`
		} `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Report.WrongBag, 1)
	assert.Equal(t, "Thief's Knife", decoded.Report.WrongBag[0].Name)
	assert.Equal(t, []string{"wardrobe1", "safe"}, decoded.Report.WrongBag[0].Actual)
}
