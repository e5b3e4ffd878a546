// Package config supplies process-level defaults for the tidylens CLI.
//
// Conventions (mirrored across the module):
//   - Default() builds the canonical configuration; Load layers an optional
//     YAML file and environment variables on top of it.
//   - Precedence, low → high: defaults ← file (TIDYLENS_CONFIG) ← env
//     (TIDYLENS_ prefix).
//   - Validation failures surface this package's sentinel errors.
package config

import (
	"github.com/lingstat/tidylens/contingency"
	"github.com/lingstat/tidylens/tidiness"
)

// maxPrecision caps printed decimal places at float64's useful range.
const maxPrecision = 15

// Config carries the CLI-wide knobs. Command-line flags override any of
// these per invocation.
type Config struct {
	// StrictCoverage fails on items present in only one grouping instead
	// of dropping them.
	StrictCoverage bool `koanf:"strict_coverage"`

	// DegenerateOne scores zero-entropy inputs as 1.0 instead of failing.
	DegenerateOne bool `koanf:"degenerate_one"`

	// Looped selects the per-triple reference implementation over the
	// vectorized one.
	Looped bool `koanf:"looped"`

	// Precision is the number of decimal places in printed scores.
	Precision int `koanf:"precision"`
}

// Default returns the canonical configuration: inner-join coverage,
// degenerate inputs fail, vectorized path, 5 decimal places.
func Default() *Config {
	return &Config{Precision: 5}
}

// Options maps the configuration onto tidiness.Options.
func (c *Config) Options() tidiness.Options {
	opts := tidiness.DefaultOptions()
	if c.StrictCoverage {
		opts.Coverage = contingency.RequireFullCoverage
	}
	if c.DegenerateOne {
		opts.Degenerate = tidiness.DegenerateOne
	}
	if c.Looped {
		opts.Mode = tidiness.Looped
	}

	return opts
}
