// Package cli wires the tidylens commands: score, compare and synth.
//
// Process-level defaults come from internal/config (TIDYLENS_CONFIG file,
// TIDYLENS_ env); flags override them per invocation. Commands write to
// cobra's configured out/err streams so tests can capture output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lingstat/tidylens/internal/config"
)

// newRootCmd assembles the command tree. Config load errors surface when
// the selected subcommand runs, not at construction.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tidylens",
		Short: "Tidiness scoring for multi-dimensional linguistic models",
		Long: `tidylens compares factor-analysis models against a hard feature clustering
with the tidiness metric: normalized mutual information between the two
groupings, in [0,1]. Higher is tidier.`,
		SilenceUsage: true,
	}

	root.AddCommand(newScoreCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newSynthCmd())

	return root
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

// resolveOptions layers per-invocation flags over the process config:
// a flag the user actually set wins, everything else follows the config.
func resolveOptions(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strict-coverage") {
		cfg.StrictCoverage, _ = flags.GetBool("strict-coverage")
	}
	if flags.Changed("degenerate-one") {
		cfg.DegenerateOne, _ = flags.GetBool("degenerate-one")
	}
	if flags.Changed("looped") {
		cfg.Looped, _ = flags.GetBool("looped")
	}
	if flags.Changed("precision") {
		cfg.Precision, _ = flags.GetInt("precision")
	}

	return cfg, nil
}

// addScoringFlags registers the flags shared by score and compare.
func addScoringFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict-coverage", false, "fail on items present in only one grouping")
	cmd.Flags().Bool("degenerate-one", false, "score zero-entropy inputs as 1.0 instead of failing")
	cmd.Flags().Bool("looped", false, "use the per-triple reference implementation")
	cmd.Flags().Int("precision", 0, "decimal places in printed scores (default from config)")
}
