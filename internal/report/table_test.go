package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gx14ac/zart/internal/compare"
	"github.com/gx14ac/zart/internal/metrics"
)

func sampleEntries() []compare.Entry {
	return []compare.Entry{
		{
			Op:        metrics.Op{Name: "Contains", Scenario: "IPv4"},
			Baseline:  metrics.Val(5.6),
			Candidate: metrics.Val(9.94),
			Ratio:     9.94 / 5.6,
			Verdict:   compare.Good,
			Defined:   true,
		},
		{
			Op:        metrics.Op{Name: "LookupPrefix", Scenario: "IPv4"},
			Baseline:  metrics.Val(20.22),
			Candidate: metrics.Val(363.1),
			Ratio:     363.1 / 20.22,
			Verdict:   compare.NeedsImprovement,
			Defined:   true,
		},
		{
			Op:       metrics.Op{Name: "Lookup", Scenario: "IPv6"},
			Baseline: metrics.Val(28.85),
			Reason:   compare.MissingCandidate,
		},
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(sampleEntries())
	require.Len(t, rows, 3)

	assert.Equal(t, Row{
		Operation: "Contains IPv4",
		Baseline:  "5.60",
		Candidate: "9.94",
		Ratio:     "1.78x",
		Verdict:   "good",
	}, rows[0])

	assert.Equal(t, "needs improvement", rows[1].Verdict)
	assert.Equal(t, "363", rows[1].Candidate, "values at or above 100 round to whole numbers")

	assert.Equal(t, Row{
		Operation: "Lookup IPv6",
		Baseline:  "28.85",
		Candidate: "N/A",
		Ratio:     "N/A",
		Verdict:   InsufficientData,
	}, rows[2])
}

func TestBuildRowsIsByteIdentical(t *testing.T) {
	entries := sampleEntries()
	assert.Equal(t, BuildRows(entries), BuildRows(entries))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.00", FormatValue(0))
	assert.Equal(t, "5.52", FormatValue(5.523))
	assert.Equal(t, "99.99", FormatValue(99.994))
	assert.Equal(t, "100", FormatValue(100))
	assert.Equal(t, "363", FormatValue(363.1))
}

func TestWriteMarkdown(t *testing.T) {
	var b strings.Builder
	rows := BuildRows(sampleEntries())
	require.NoError(t, WriteMarkdown(&b, "Comparison Summary", "bart", "zart", rows))

	out := b.String()
	assert.Contains(t, out, "# Comparison Summary")
	assert.Contains(t, out, "| Operation | bart (ns/op) | zart (ns/op) | Ratio | Verdict |")
	assert.Contains(t, out, "| Contains IPv4 | 5.60 | 9.94 | 1.78x | good |")
	assert.Contains(t, out, "| Lookup IPv6 | 28.85 | N/A | N/A | insufficient data |")
}

func TestRenderTextListsEveryRow(t *testing.T) {
	rows := BuildRows(sampleEntries())
	out := RenderText("bart", "zart", rows)

	for _, r := range rows {
		assert.Contains(t, out, r.Operation)
		assert.Contains(t, out, r.Verdict)
	}
}
