package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gx14ac/zart/internal/chart"
	"github.com/gx14ac/zart/internal/compare"
	"github.com/gx14ac/zart/internal/metrics"
	"github.com/gx14ac/zart/internal/report"
)

var (
	compareData      string
	compareBench     string
	compareBaseline  string
	compareCandidate string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Render the comparison report family for two implementations",
	Long: `Loads paired measurements and renders every comparison report in the
catalogue: grouped latency bars, the verdict-colored ratio chart, the
per-operation analyses, throughput bars and the summary table.

Measurements come from --data (a YAML measurement set), from --bench
(go test -bench output, recorded under the --baseline name), or from the
embedded published numbers when neither is given.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareData, "data", "", "YAML measurement set")
	compareCmd.Flags().StringVar(&compareBench, "bench", "", "go test -bench output for the baseline")
	compareCmd.Flags().StringVar(&compareBaseline, "baseline", "", "baseline implementation name")
	compareCmd.Flags().StringVar(&compareCandidate, "candidate", "", "candidate implementation name")
}

func runCompare(cmd *cobra.Command, args []string) error {
	store, baseline, candidate, err := loadComparison()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	in := report.Inputs{
		Store:     store,
		Baseline:  baseline,
		Candidate: candidate,
	}
	targets := report.ForOutput(outputDir, report.Comparison())
	outcome, err := report.Run(in, targets, chart.New(), log)
	if err != nil {
		return err
	}

	entries, err := compare.Compute(store, baseline, candidate, store.Ops())
	if err != nil {
		return err
	}
	rows := report.BuildRows(entries)
	fmt.Fprintln(cmd.OutOrStdout(), report.RenderText(baseline, candidate, rows))

	printOutcome(cmd, outcome)
	return nil
}

// loadComparison assembles the measurement store and resolves which
// implementations are compared. Flags override the default pairing of the
// first two implementations seen in the input.
func loadComparison() (*metrics.Store, string, string, error) {
	var store *metrics.Store

	switch {
	case compareData == "" && compareBench == "":
		store = metrics.DefaultSet()
	case compareData != "":
		s, err := metrics.LoadYAMLFile(compareData)
		if err != nil {
			return nil, "", "", err
		}
		store = s
	default:
		store = metrics.NewStore()
	}

	if compareBench != "" {
		impl := compareBaseline
		if impl == "" {
			impl = metrics.DefaultBaseline
		}
		f, err := os.Open(compareBench)
		if err != nil {
			return nil, "", "", err
		}
		bench, err := metrics.LoadGoBench(f, impl, compareBench)
		f.Close()
		if err != nil {
			return nil, "", "", err
		}
		if err := store.Merge(bench); err != nil {
			return nil, "", "", err
		}
	}

	impls := store.Impls()
	if len(impls) < 2 {
		return nil, "", "", fmt.Errorf("need measurements for two implementations, got %d", len(impls))
	}

	baseline := compareBaseline
	if baseline == "" {
		baseline = impls[0]
	}
	candidate := compareCandidate
	if candidate == "" {
		for _, impl := range impls {
			if impl != baseline {
				candidate = impl
				break
			}
		}
	}
	for _, name := range []string{baseline, candidate} {
		if !implKnown(impls, name) {
			return nil, "", "", fmt.Errorf("no measurements for implementation %q", name)
		}
	}
	return store, baseline, candidate, nil
}

func implKnown(impls []string, name string) bool {
	for _, impl := range impls {
		if impl == name {
			return true
		}
	}
	return false
}
