// Package report defines the fixed catalogue of benchmark reports and the
// pipeline that resolves data for each of them. Adding a new report means
// adding one catalogue entry; the pipeline and renderer stay untouched.
package report

import (
	"path/filepath"

	"github.com/gx14ac/zart/internal/metrics"
)

// Kind selects how a report is rendered.
type Kind int

const (
	// GroupedBar places baseline and candidate bars side by side per operation.
	GroupedBar Kind = iota
	// RatioBar draws one candidate/baseline ratio bar per operation,
	// colored by verdict, with a parity line at 1.0.
	RatioBar
	// Line draws dependent series against a monotonic independent variable.
	Line
	// TwinAxisLine stacks aligned panels that share the independent axis,
	// pairing series with incompatible units (rates vs memory).
	TwinAxisLine
	// Table emits the summary table as a Markdown artifact.
	Table
)

func (k Kind) String() string {
	switch k {
	case GroupedBar:
		return "grouped-bar"
	case RatioBar:
		return "ratio-bar"
	case Line:
		return "line"
	case TwinAxisLine:
		return "twin-axis-line"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// Transform converts stored latencies into the plotted series.
type Transform int

const (
	// Latency plots ns/op as stored.
	Latency Transform = iota
	// Throughput plots 1e9/ns, i.e. operations per second.
	Throughput
)

// Apply transforms a raw measurement. Throughput of a zero latency is
// undefined and reported as unavailable by the caller before this point.
func (t Transform) Apply(v float64) float64 {
	if t == Throughput {
		return 1e9 / v
	}
	return v
}

// Series names one dependent column of a scaling source.
type Series struct {
	Column string
	Label  string
}

// Panel is one axes region of a scaling report.
type Panel struct {
	Title  string
	YLabel string
	Series []Series
	LogX   bool
	LogY   bool
}

// Definition binds a metric/ratio selector to a chart kind and output file.
// Definitions are immutable; the catalogue below is the single source of
// truth for what gets produced.
type Definition struct {
	ID      string
	Kind    Kind
	Title   string
	Outfile string

	// Comparison reports: operation subset (nil means every operation in
	// store order) and the value transform.
	Ops       []metrics.Op
	Transform Transform

	// Scaling reports: logical source name, independent column and panels.
	Source  string
	XColumn string
	XLabel  string
	Panels  []Panel
}

// Target is a Definition resolved against an output root.
type Target struct {
	Definition
	Path string
}

var catalogue = []Definition{
	{
		ID:      "latency_comparison",
		Kind:    GroupedBar,
		Title:   "Latency by Operation",
		Outfile: "latency_comparison.png",
	},
	{
		ID:      "performance_ratio",
		Kind:    RatioBar,
		Title:   "Performance Ratio (candidate / baseline)",
		Outfile: "performance_ratio.png",
	},
	{
		ID:      "contains_analysis",
		Kind:    GroupedBar,
		Title:   "Contains Operations",
		Outfile: "contains_analysis.png",
		Ops: []metrics.Op{
			{Name: "Contains", Scenario: "IPv4"},
			{Name: "Contains", Scenario: "IPv6"},
			{Name: "MissContains", Scenario: "IPv4"},
			{Name: "MissContains", Scenario: "IPv6"},
		},
	},
	{
		ID:      "lookup_analysis",
		Kind:    GroupedBar,
		Title:   "Lookup Operations",
		Outfile: "lookup_analysis.png",
		Ops: []metrics.Op{
			{Name: "Lookup", Scenario: "IPv4"},
			{Name: "Lookup", Scenario: "IPv6"},
			{Name: "LookupPrefix", Scenario: "IPv4"},
			{Name: "MissLookup", Scenario: "IPv4"},
			{Name: "MissLookup", Scenario: "IPv6"},
		},
	},
	{
		ID:        "throughput_comparison",
		Kind:      GroupedBar,
		Title:     "Throughput by Operation",
		Outfile:   "throughput_comparison.png",
		Transform: Throughput,
	},
	{
		ID:      "summary_table",
		Kind:    Table,
		Title:   "Comparison Summary",
		Outfile: "summary.md",
	},
	{
		ID:      "basic_scaling",
		Kind:    Line,
		Title:   "Basic Benchmark Scaling",
		Outfile: "basic_scaling.png",
		Source:  "basic",
		XColumn: "prefix_count",
		XLabel:  "Number of Prefixes",
		Panels: []Panel{
			{
				Title:  "Performance Scaling with Prefix Count",
				YLabel: "Operations per Second",
				Series: []Series{
					{Column: "insert_rate", Label: "Insert Rate"},
					{Column: "lookup_rate", Label: "Lookup Rate"},
				},
				LogX: true,
				LogY: true,
			},
			{
				Title:  "Memory Usage",
				YLabel: "Bytes",
				Series: []Series{{Column: "memory_usage_bytes", Label: "Memory"}},
				LogX:   true,
				LogY:   true,
			},
			{
				Title:  "Match Rate",
				YLabel: "Percent",
				Series: []Series{{Column: "match_rate", Label: "Match Rate"}},
				LogX:   true,
			},
		},
	},
	{
		ID:      "realistic_scaling",
		Kind:    TwinAxisLine,
		Title:   "Realistic Benchmark Scaling",
		Outfile: "realistic_scaling.png",
		Source:  "realistic",
		XColumn: "prefix_count",
		XLabel:  "Number of Prefixes",
		Panels: []Panel{
			{
				Title:  "Lookup Performance",
				YLabel: "Operations per Second",
				Series: []Series{{Column: "lookup_rate", Label: "Lookup Rate"}},
				LogX:   true,
				LogY:   true,
			},
			{
				Title:  "Memory Usage",
				YLabel: "Bytes",
				Series: []Series{{Column: "memory_usage_bytes", Label: "Memory"}},
				LogX:   true,
				LogY:   true,
			},
			{
				Title:  "Hit and Match Rates",
				YLabel: "Percent",
				Series: []Series{
					{Column: "cache_hit_rate", Label: "Cache Hit Rate"},
					{Column: "match_rate", Label: "Match Rate"},
				},
				LogX: true,
			},
		},
	},
	{
		ID:      "thread_scaling",
		Kind:    Line,
		Title:   "Multithreaded Scaling",
		Outfile: "thread_scaling.png",
		Source:  "advanced",
		XColumn: "thread_count",
		XLabel:  "Number of Threads",
		Panels: []Panel{
			{
				Title:  "Scalability with Thread Count",
				YLabel: "Operations per Second",
				Series: []Series{{Column: "lookup_rate", Label: "Lookup Rate"}},
			},
			{
				Title:  "Memory Fragmentation Impact",
				YLabel: "Percent",
				Series: []Series{{Column: "fragmentation_impact", Label: "Fragmentation Impact"}},
			},
		},
	},
}

// Catalogue returns the fixed report list.
func Catalogue() []Definition {
	out := make([]Definition, len(catalogue))
	copy(out, catalogue)
	return out
}

// Comparison returns the catalogue entries driven by paired measurements.
func Comparison() []Definition {
	return filter(func(d Definition) bool { return d.Source == "" })
}

// Scaling returns the catalogue entries driven by scaling sources.
func Scaling() []Definition {
	return filter(func(d Definition) bool { return d.Source != "" })
}

func filter(keep func(Definition) bool) []Definition {
	var out []Definition
	for _, d := range catalogue {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// ForOutput resolves definitions against an output root. It creates no
// directories; that belongs to the caller doing I/O.
func ForOutput(root string, defs []Definition) []Target {
	targets := make([]Target, 0, len(defs))
	for _, d := range defs {
		targets = append(targets, Target{Definition: d, Path: filepath.Join(root, d.Outfile)})
	}
	return targets
}
