package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gx14ac/zart/internal/report"
)

var (
	outputDir string
	verbose   bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "benchreport",
	Short: "Generate zart benchmark comparison and scaling reports",
	Long: `benchreport turns raw zart benchmark measurements into a fixed set of
charts and summary tables. The compare subcommand pairs two implementations
per operation; the scaling subcommand plots how one implementation behaves
as prefix or thread counts grow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "assets", "directory for report artifacts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// printOutcome lists every artifact written and every report that was not
// produced. Skips and failures are reported but do not fail the invocation.
func printOutcome(cmd *cobra.Command, out report.Outcome) {
	w := cmd.OutOrStdout()
	for _, p := range out.Written {
		fmt.Fprintf(w, "wrote %s\n", p)
	}
	for _, s := range out.Skipped {
		fmt.Fprintf(w, "skipped %s: %s\n", s.ID, s.Reason)
	}
	for _, f := range out.Failed {
		fmt.Fprintf(w, "failed %s: %s\n", f.ID, f.Reason)
	}
}
