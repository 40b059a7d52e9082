package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gear-auditor/core/reconcile"
	"gear-auditor/core/utils"

	"github.com/goccy/go-yaml"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", s)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "txt"
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain"
	}
}

// Render writes audit to w in the given format. Text output holds the report
// sections only; JSON and YAML carry the whole audit.
func Render(w io.Writer, audit *Audit, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(audit, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(audit)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return RenderText(w, audit.Report)
	}
}

const rule = "======================================================================"

// RenderText writes the four report sections followed by the summary block.
func RenderText(w io.Writer, report *reconcile.Report) error {
	var b strings.Builder

	header := func(title string, n int, note string) {
		b.WriteString(rule + "\n")
		if note != "" {
			fmt.Fprintf(&b, "%-12s (%d)  -- %s\n", title, n, note)
		} else {
			fmt.Fprintf(&b, "%-12s (%d)\n", title, n)
		}
		b.WriteString(rule + "\n")
	}

	header("OK", len(report.OK), "")
	for _, r := range report.OK {
		fmt.Fprintf(&b, "  [id=%6d]  %-35s  bag=%s\n", r.ID, utils.Quote(r.Name), r.Expected)
	}

	b.WriteString("\n")
	header("WRONG BAG", len(report.WrongBag), "item exists but in a different bag")
	for _, r := range report.WrongBag {
		fmt.Fprintf(&b, "  [id=%6d]  %-35s  expected=%s  found_in=%s\n",
			r.ID, utils.Quote(r.Name), utils.Quote(r.Expected), utils.JoinLocations(r.Actual))
	}

	b.WriteString("\n")
	header("MISSING", len(report.Missing), "not found in any bag")
	for _, r := range report.Missing {
		fmt.Fprintf(&b, "  [id=%6d]  %-35s  (expected bag=%s)\n", r.ID, utils.Quote(r.Name), r.Expected)
	}

	b.WriteString("\n")
	header("UNKNOWN NAME", len(report.Unknown), "not found in items database")
	for _, r := range report.Unknown {
		fmt.Fprintf(&b, "  %-40s  (expected bag=%s)", utils.Quote(r.Name), r.Expected)
		if r.Suggestion != "" {
			fmt.Fprintf(&b, "  did you mean %s?", utils.Quote(r.Suggestion))
		}
		b.WriteString("\n")
	}

	s := report.Summary
	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "  Total references : %d\n", s.Total)
	fmt.Fprintf(&b, "  OK               : %d\n", s.OK)
	fmt.Fprintf(&b, "  Wrong bag        : %d\n", s.WrongBag)
	fmt.Fprintf(&b, "  Missing          : %d\n", s.Missing)
	fmt.Fprintf(&b, "  Unknown name     : %d\n", s.Unknown)

	_, err := io.WriteString(w, b.String())
	return err
}
