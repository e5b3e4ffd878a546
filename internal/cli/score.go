package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lingstat/tidylens/contingency"
	"github.com/lingstat/tidylens/grouping"
	"github.com/lingstat/tidylens/tidiness"
)

// newScoreCmd builds the `score` subcommand: one clustering, one loading
// matrix, one score.
func newScoreCmd() *cobra.Command {
	var (
		clustersPath string
		loadingsPath string
		showTable    bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one factor model against a clustering",
		Long: `Score reads a clusters CSV (header, then item,group records) and a
loadings CSV (header naming the factors, then item,<loading...> records)
and prints the tidiness score with its information-theoretic parts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			partition, loadings, err := readInputs(clustersPath, loadingsPath)
			if err != nil {
				return err
			}

			opts := cfg.Options()
			res, err := tidiness.Score(partition, loadings, &opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prec := cfg.Precision
			fmt.Fprintf(out, "tidiness = %.*f\n", prec, res.Score)
			fmt.Fprintf(out, "I (bits) = %.*f\n", prec, res.MutualInformation)
			fmt.Fprintf(out, "H (bits) = %.*f\n", prec, res.JointEntropy)
			if res.Degenerate {
				fmt.Fprintln(out, "note: degenerate input (H=0), score set by policy")
			}
			if res.DroppedItems > 0 {
				fmt.Fprintf(out, "note: %d unmatched item(s) dropped\n", res.DroppedItems)
			}
			if showTable {
				printTable(out, res.Table, prec)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&clustersPath, "clusters", "", "clusters CSV path (item,group)")
	cmd.Flags().StringVar(&loadingsPath, "loadings", "", "loadings CSV path (item,f1,f2,...)")
	cmd.Flags().BoolVar(&showTable, "table", false, "also print the joint weight table")
	_ = cmd.MarkFlagRequired("clusters")
	_ = cmd.MarkFlagRequired("loadings")
	addScoringFlags(cmd)

	return cmd
}

// readInputs loads both CSV files into their grouping types.
func readInputs(clustersPath, loadingsPath string) (*grouping.Partition, *grouping.Loadings, error) {
	cf, err := os.Open(clustersPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open clusters: %w", err)
	}
	defer cf.Close()
	partition, err := grouping.ReadPartitionCSV(cf)
	if err != nil {
		return nil, nil, fmt.Errorf("clusters %s: %w", clustersPath, err)
	}

	lf, err := os.Open(loadingsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open loadings: %w", err)
	}
	defer lf.Close()
	loadings, err := grouping.ReadLoadingsCSV(lf)
	if err != nil {
		return nil, nil, fmt.Errorf("loadings %s: %w", loadingsPath, err)
	}

	return partition, loadings, nil
}

// printTable renders the joint group×factor weight table.
func printTable(out io.Writer, t *contingency.Table, prec int) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprint(w, "group")
	for _, f := range t.Factors() {
		fmt.Fprintf(w, "\t%s", f)
	}
	fmt.Fprintln(w)
	for g, label := range t.Groups() {
		fmt.Fprint(w, label)
		for f := range t.Factors() {
			fmt.Fprintf(w, "\t%.*f", prec, t.Weight(g, f))
		}
		fmt.Fprintln(w)
	}
}
