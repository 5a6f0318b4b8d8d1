package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gx14ac/zart/internal/compare"
	"github.com/gx14ac/zart/internal/metrics"
	"github.com/gx14ac/zart/internal/report"
)

func entry(name, scenario string, base, cand float64) compare.Entry {
	e := compare.Entry{
		Op:        metrics.Op{Name: name, Scenario: scenario},
		Baseline:  metrics.Val(base),
		Candidate: metrics.Val(cand),
	}
	if base > 0 {
		e.Ratio = cand / base
		e.Verdict = compare.Classify(e.Ratio)
		e.Defined = true
	}
	return e
}

func undefinedEntry(name, scenario string, reason compare.Reason) compare.Entry {
	e := compare.Entry{Op: metrics.Op{Name: name, Scenario: scenario}, Reason: reason}
	if reason == compare.MissingCandidate {
		e.Baseline = metrics.Val(1)
	}
	return e
}

func testData() *report.Data {
	return &report.Data{
		Baseline:  "bart",
		Candidate: "zart",
		Entries: []compare.Entry{
			entry("Contains", "IPv4", 5.523, 106.0),
			entry("Lookup", "IPv4", 17.15, 112.6),
			entry("LookupPrefix", "IPv4", 20.22, 363.1),
			undefinedEntry("Lookup", "IPv6", compare.MissingCandidate),
		},
	}
}

func comparisonTarget(id string) report.Target {
	for _, d := range report.Comparison() {
		if d.ID == id {
			return report.Target{Definition: d}
		}
	}
	panic("unknown report " + id)
}

func TestPairedValuesExcludesUnavailable(t *testing.T) {
	d := testData()
	pairs := pairedValues(d.Entries, report.Latency)
	require.Len(t, pairs, 3, "the unavailable pair is omitted, not drawn as zero")
	assert.Equal(t, "Contains IPv4", pairs[0].label)
	assert.Equal(t, 5.523, pairs[0].baseline)
	assert.Equal(t, 106.0, pairs[0].candidate)
}

func TestPairedValuesThroughput(t *testing.T) {
	entries := []compare.Entry{
		entry("Contains", "IPv4", 5.0, 10.0),
		entry("Lookup", "IPv4", 0.0, 10.0), // zero latency has no throughput
	}
	pairs := pairedValues(entries, report.Throughput)
	require.Len(t, pairs, 1)
	assert.Equal(t, 1e9/5.0, pairs[0].baseline)
	assert.Equal(t, 1e9/10.0, pairs[0].candidate)
}

func TestRatioLabel(t *testing.T) {
	assert.Equal(t, "1.78x", ratioLabel(1.775000001))
	assert.Equal(t, "19.20x", ratioLabel(19.2))
	assert.Equal(t, "120x", ratioLabel(120.4))
}

func TestVerdictColors(t *testing.T) {
	faster := verdictColor(compare.Faster)
	good := verdictColor(compare.Good)
	slow := verdictColor(compare.NeedsImprovement)
	assert.NotEqual(t, faster, good)
	assert.NotEqual(t, good, slow)
	assert.NotEqual(t, faster, slow)
}

func TestLineXYsDropsNonPositiveOnLogScale(t *testing.T) {
	xs := []float64{0, 10, 100}
	ys := []float64{5, 0, 7}

	assert.Len(t, lineXYs(xs, ys, false, false), 3)
	assert.Len(t, lineXYs(xs, ys, true, false), 2, "x=0 cannot sit on a log axis")
	assert.Len(t, lineXYs(xs, ys, true, true), 1)
}

func TestRenderGroupedBar(t *testing.T) {
	r := New()
	tgt := comparisonTarget("latency_comparison")
	tgt.Path = filepath.Join(t.TempDir(), tgt.Outfile)

	require.NoError(t, r.Render(tgt, testData()))
	st, err := os.Stat(tgt.Path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestRenderRatioBar(t *testing.T) {
	r := New()
	tgt := comparisonTarget("performance_ratio")
	tgt.Path = filepath.Join(t.TempDir(), tgt.Outfile)

	require.NoError(t, r.Render(tgt, testData()))
	_, err := os.Stat(tgt.Path)
	require.NoError(t, err)
}

func TestRenderSkipsWhenNothingToDraw(t *testing.T) {
	r := New()
	d := &report.Data{
		Baseline:  "bart",
		Candidate: "zart",
		Entries: []compare.Entry{
			undefinedEntry("Lookup", "IPv6", compare.MissingCandidate),
		},
	}

	for _, id := range []string{"latency_comparison", "performance_ratio"} {
		tgt := comparisonTarget(id)
		tgt.Path = filepath.Join(t.TempDir(), tgt.Outfile)

		err := r.Render(tgt, d)
		var skip *report.SkipError
		require.True(t, errors.As(err, &skip), "%s should skip, got %v", id, err)
		_, statErr := os.Stat(tgt.Path)
		assert.True(t, os.IsNotExist(statErr), "no broken artifact left behind")
	}
}

func TestRenderTableArtifact(t *testing.T) {
	r := New()
	tgt := comparisonTarget("summary_table")
	tgt.Path = filepath.Join(t.TempDir(), tgt.Outfile)

	d := testData()
	d.Rows = report.BuildRows(d.Entries)
	require.NoError(t, r.Render(tgt, d))

	raw, err := os.ReadFile(tgt.Path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "insufficient data")
}

func TestRenderScalingPanels(t *testing.T) {
	table, err := metrics.LoadScalingCSVFile(filepath.Join("testdata", "basic.csv"), "prefix_count")
	require.NoError(t, err)

	r := New()
	var tgt report.Target
	for _, def := range report.Scaling() {
		if def.ID == "basic_scaling" {
			tgt = report.Target{Definition: def}
		}
	}
	require.NotEmpty(t, tgt.ID)
	tgt.Path = filepath.Join(t.TempDir(), tgt.Outfile)

	d := &report.Data{Scaling: table}
	require.NoError(t, r.Render(tgt, d))
	st, err := os.Stat(tgt.Path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestRenderScalingMissingColumnSkips(t *testing.T) {
	table := &metrics.ScalingTable{
		Source:  "basic",
		XColumn: "prefix_count",
		X:       []float64{1000, 10000},
		Columns: []metrics.ScalingColumn{{Name: "unrelated", Values: []float64{1, 2}}},
	}

	r := New()
	var tgt report.Target
	for _, def := range report.Scaling() {
		if def.ID == "basic_scaling" {
			tgt = report.Target{Definition: def}
		}
	}
	tgt.Path = filepath.Join(t.TempDir(), tgt.Outfile)

	err := r.Render(tgt, &report.Data{Scaling: table})
	var skip *report.SkipError
	assert.True(t, errors.As(err, &skip))
}
