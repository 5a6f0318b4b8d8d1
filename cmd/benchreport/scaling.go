package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gx14ac/zart/internal/chart"
	"github.com/gx14ac/zart/internal/metrics"
	"github.com/gx14ac/zart/internal/report"
)

var scalingPaths = map[string]*string{
	"basic":     new(string),
	"realistic": new(string),
	"advanced":  new(string),
}

var scalingCmd = &cobra.Command{
	Use:   "scaling",
	Short: "Render the scaling report family from CSV benchmark results",
	Long: `Loads the CSV scaling results and renders the scaling charts: rate and
memory curves against prefix count, and thread-count scalability. A missing
CSV skips its reports with a warning; the rest are still produced.`,
	RunE: runScaling,
}

func init() {
	rootCmd.AddCommand(scalingCmd)
	scalingCmd.Flags().StringVar(scalingPaths["basic"], "basic", "assets/basic_bench_results.csv", "basic benchmark CSV")
	scalingCmd.Flags().StringVar(scalingPaths["realistic"], "realistic", "assets/realistic_bench_results.csv", "realistic benchmark CSV")
	scalingCmd.Flags().StringVar(scalingPaths["advanced"], "advanced", "assets/advanced_bench_results.csv", "advanced (multithreaded) benchmark CSV")
}

func runScaling(cmd *cobra.Command, args []string) error {
	sources := make(map[string]*metrics.ScalingTable)
	for _, def := range report.Scaling() {
		if _, done := sources[def.Source]; done {
			continue
		}
		pathp, ok := scalingPaths[def.Source]
		if !ok {
			continue
		}
		path := *pathp
		if _, err := os.Stat(path); err != nil {
			log.WithField("source", def.Source).Debugf("no CSV at %s", path)
			continue
		}
		table, err := metrics.LoadScalingCSVFile(path, def.XColumn)
		if err != nil {
			return err
		}
		sources[def.Source] = table
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	targets := report.ForOutput(outputDir, report.Scaling())
	outcome, err := report.Run(report.Inputs{Scaling: sources}, targets, chart.New(), log)
	if err != nil {
		return err
	}
	printOutcome(cmd, outcome)
	return nil
}
