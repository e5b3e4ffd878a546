package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lingstat/tidylens/grouping"
	"github.com/lingstat/tidylens/modelrank"
)

// ErrEmptyManifest indicates a manifest that lists no models.
var ErrEmptyManifest = errors.New("cli: manifest lists no models")

// manifest is the YAML schema of a model sweep:
//
//	models:
//	  - name: three-factor
//	    loadings: models/three.csv
//
// Loadings paths are resolved relative to the manifest file.
type manifest struct {
	Models []manifestModel `yaml:"models"`
}

type manifestModel struct {
	Name     string `yaml:"name"`
	Loadings string `yaml:"loadings"`
}

// newCompareCmd builds the `compare` subcommand: rank every model in a
// manifest against one clustering, tidiest first.
func newCompareCmd() *cobra.Command {
	var (
		clustersPath string
		manifestPath string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank candidate factor models against a clustering",
		Long: `Compare reads a clusters CSV and a YAML manifest of named loading CSVs,
scores every candidate, and prints them tidiest-first. Candidates that
fail to score are listed last with the failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			cf, err := os.Open(clustersPath)
			if err != nil {
				return fmt.Errorf("open clusters: %w", err)
			}
			defer cf.Close()
			partition, err := grouping.ReadPartitionCSV(cf)
			if err != nil {
				return fmt.Errorf("clusters %s: %w", clustersPath, err)
			}

			candidates, err := readManifest(manifestPath)
			if err != nil {
				return err
			}

			opts := cfg.Options()
			scores, err := modelrank.Rank(partition, candidates, &opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "rank\tmodel\tfactors\ttidiness")
			for i, s := range scores {
				if s.Err != nil {
					fmt.Fprintf(w, "%d\t%s\t%d\terror: %v\n", i+1, s.Name, s.Factors, s.Err)

					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%.*f\n", i+1, s.Name, s.Factors, cfg.Precision, s.Score)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&clustersPath, "clusters", "", "clusters CSV path (item,group)")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML manifest of candidate models")
	_ = cmd.MarkFlagRequired("clusters")
	_ = cmd.MarkFlagRequired("manifest")
	addScoringFlags(cmd)

	return cmd
}

// readManifest parses the YAML manifest and loads every candidate's CSV,
// resolving relative paths against the manifest's directory.
func readManifest(path string) ([]modelrank.Candidate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err = yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if len(m.Models) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyManifest)
	}

	base := filepath.Dir(path)
	candidates := make([]modelrank.Candidate, 0, len(m.Models))
	for _, mm := range m.Models {
		p := mm.Loadings
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", mm.Name, err)
		}
		loadings, err := grouping.ReadLoadingsCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("model %q (%s): %w", mm.Name, p, err)
		}
		candidates = append(candidates, modelrank.Candidate{Name: mm.Name, Loadings: loadings})
	}

	return candidates, nil
}
