package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lingstat/tidylens/grouping"
	"github.com/lingstat/tidylens/synth"
)

// newSynthCmd builds the `synth` subcommand: write a deterministic
// synthetic clusters/loadings CSV pair for experimenting with the metric.
func newSynthCmd() *cobra.Command {
	cfg := synth.DefaultConfig()
	var out string

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic clusters/loadings CSV pair",
		Long: `Synth plants a group-to-factor correspondence blurred by the chosen
noise level and writes <out>_clusters.csv and <out>_loadings.csv.
The same flags always produce the same files.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			partition, loadings, err := synth.Generate(cfg)
			if err != nil {
				return err
			}

			clustersPath := out + "_clusters.csv"
			loadingsPath := out + "_loadings.csv"
			if err = writeClustersCSV(clustersPath, partition); err != nil {
				return err
			}
			if err = writeLoadingsCSV(loadingsPath, loadings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", clustersPath, loadingsPath)

			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Items, "items", cfg.Items, "number of features")
	cmd.Flags().IntVar(&cfg.Groups, "groups", cfg.Groups, "number of cluster groups")
	cmd.Flags().IntVar(&cfg.Factors, "factors", cfg.Factors, "number of factors")
	cmd.Flags().Float64Var(&cfg.Noise, "noise", cfg.Noise, "off-factor noise level in [0,1]")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed (0 = fixed default)")
	cmd.Flags().StringVar(&out, "out", "synthetic", "output file prefix")

	return cmd
}

// writeClustersCSV writes the partition as item,group records with a header.
func writeClustersCSV(path string, p *grouping.Partition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"item", "group"}); err != nil {
		return err
	}
	for _, item := range p.Items() {
		g, _ := p.GroupOf(item)
		if err = w.Write([]string{item, g}); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// writeLoadingsCSV writes the loadings in wide format with a factor header.
func writeLoadingsCSV(path string, l *grouping.Loadings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"item"}, l.Factors()...)
	if err = w.Write(header); err != nil {
		return err
	}
	rec := make([]string, 1+l.NumFactors())
	for _, item := range l.Items() {
		row, _ := l.Row(item)
		rec[0] = item
		for j, v := range row {
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err = w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
