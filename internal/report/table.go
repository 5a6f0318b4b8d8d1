package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gx14ac/zart/internal/compare"
	"github.com/gx14ac/zart/internal/metrics"
)

// InsufficientData is the verdict column text for undefined ratio entries.
// Undefined entries are dropped from ratio charts, so the table is where
// they must remain visible.
const InsufficientData = "insufficient data"

// Row is one rendered summary line. All columns are final strings so that
// two runs over identical input produce byte-identical row sequences.
type Row struct {
	Operation string
	Baseline  string
	Candidate string
	Ratio     string
	Verdict   string
}

// FormatValue rounds for presentation: two decimals below 100, whole
// numbers above.
func FormatValue(f float64) string {
	if f < 100 {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprintf("%.0f", f)
}

func formatMeasurement(v metrics.Value) string {
	f, ok := v.Float()
	if !ok {
		return "N/A"
	}
	return FormatValue(f)
}

// BuildRows produces one row per entry, preserving entry order.
func BuildRows(entries []compare.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		r := Row{
			Operation: e.Op.Label(),
			Baseline:  formatMeasurement(e.Baseline),
			Candidate: formatMeasurement(e.Candidate),
		}
		if e.Defined {
			r.Ratio = fmt.Sprintf("%.2fx", e.Ratio)
			r.Verdict = e.Verdict.String()
		} else {
			r.Ratio = "N/A"
			r.Verdict = InsufficientData
		}
		rows = append(rows, r)
	}
	return rows
}

// WriteMarkdown writes the rows as a Markdown table artifact.
func WriteMarkdown(w io.Writer, title, baseline, candidate string, rows []Row) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "| Operation | %s (ns/op) | %s (ns/op) | Ratio | Verdict |\n", baseline, candidate)
	b.WriteString("|---|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Operation, r.Baseline, r.Candidate, r.Ratio, r.Verdict)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	fasterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	slowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func verdictStyle(verdict string) lipgloss.Style {
	switch verdict {
	case compare.Faster.String():
		return fasterStyle
	case compare.Good.String():
		return goodStyle
	case compare.NeedsImprovement.String():
		return slowStyle
	default:
		return missingStyle
	}
}

// RenderText renders the rows for the terminal with aligned columns and a
// colored verdict column.
func RenderText(baseline, candidate string, rows []Row) string {
	cols := []string{"Operation", baseline, candidate, "Ratio", "Verdict"}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for _, r := range rows {
		for i, cell := range []string{r.Operation, r.Baseline, r.Candidate, r.Ratio, r.Verdict} {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	pad := func(s string, w int) string { return s + strings.Repeat(" ", w-len(s)) }

	var b strings.Builder
	for i, c := range cols {
		b.WriteString(headerStyle.Render(pad(c, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(pad(r.Operation, widths[0]))
		b.WriteString("  ")
		b.WriteString(pad(r.Baseline, widths[1]))
		b.WriteString("  ")
		b.WriteString(pad(r.Candidate, widths[2]))
		b.WriteString("  ")
		b.WriteString(pad(r.Ratio, widths[3]))
		b.WriteString("  ")
		b.WriteString(verdictStyle(r.Verdict).Render(r.Verdict))
		b.WriteString("\n")
	}
	return b.String()
}
