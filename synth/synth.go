package synth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lingstat/tidylens/grouping"
)

// Sentinel errors returned by Generate on invalid configuration.
var (
	// ErrBadItemCount indicates Items < 1.
	ErrBadItemCount = errors.New("synth: Items must be at least 1")

	// ErrBadGroupCount indicates Groups < 1 or Groups > Items.
	ErrBadGroupCount = errors.New("synth: Groups must be in [1, Items]")

	// ErrBadFactorCount indicates Factors < 1.
	ErrBadFactorCount = errors.New("synth: Factors must be at least 1")

	// ErrBadNoise indicates Noise outside [0, 1].
	ErrBadNoise = errors.New("synth: Noise must be in [0, 1]")
)

// defaultSeed is the fixed seed used when Config.Seed == 0, keeping
// zero-value configs reproducible rather than time-dependent.
const defaultSeed int64 = 1

// Home-factor magnitudes are drawn from [homeBase, homeBase+homeSpread).
const (
	homeBase   = 0.75
	homeSpread = 0.5
)

// Config describes the synthetic dataset to generate.
type Config struct {
	// Items is the number of features; names are "feat_001", "feat_002", ...
	Items int

	// Groups is the number of partition groups ("g1", "g2", ...).
	// Items are dealt into groups round-robin.
	Groups int

	// Factors is the number of loading factors ("f1", "f2", ...).
	Factors int

	// Noise scales off-home-factor magnitudes: each such cell draws from
	// [0, Noise). 0 plants a perfectly tidy correspondence.
	Noise float64

	// Seed drives the generator; 0 selects a fixed default seed.
	Seed int64
}

// DefaultConfig returns a small, mildly noisy dataset configuration:
// 40 items, 4 groups, 4 factors, noise 0.1, default seed.
func DefaultConfig() Config {
	return Config{Items: 40, Groups: 4, Factors: 4, Noise: 0.1}
}

// Generate builds a partition and a loading matrix per cfg.
//
// Errors: ErrBadItemCount, ErrBadGroupCount, ErrBadFactorCount, ErrBadNoise.
//
// Complexity: O(Items×Factors).
func Generate(cfg Config) (*grouping.Partition, *grouping.Loadings, error) {
	if err := validate(cfg); err != nil {
		return nil, nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	items := make([]string, cfg.Items)
	assignments := make([]grouping.Assignment, cfg.Items)
	for i := range items {
		items[i] = fmt.Sprintf("feat_%03d", i+1)
		assignments[i] = grouping.Assignment{
			Item:  items[i],
			Group: fmt.Sprintf("g%d", i%cfg.Groups+1),
		}
	}
	partition, err := grouping.NewPartition(assignments)
	if err != nil {
		return nil, nil, err
	}

	factors := make([]string, cfg.Factors)
	for j := range factors {
		factors[j] = fmt.Sprintf("f%d", j+1)
	}

	values := make([]float64, cfg.Items*cfg.Factors)
	for i := 0; i < cfg.Items; i++ {
		home := (i % cfg.Groups) % cfg.Factors // the group's home factor
		for j := 0; j < cfg.Factors; j++ {
			var v float64
			if j == home {
				v = homeBase + homeSpread*rng.Float64()
			} else {
				v = cfg.Noise * rng.Float64()
			}
			if rng.Intn(2) == 1 {
				v = -v
			}
			values[i*cfg.Factors+j] = v
		}
	}
	loadings, err := grouping.NewLoadings(items, factors, values)
	if err != nil {
		return nil, nil, err
	}

	return partition, loadings, nil
}

// validate checks cfg against the sentinel taxonomy.
func validate(cfg Config) error {
	if cfg.Items < 1 {
		return ErrBadItemCount
	}
	if cfg.Groups < 1 || cfg.Groups > cfg.Items {
		return ErrBadGroupCount
	}
	if cfg.Factors < 1 {
		return ErrBadFactorCount
	}
	if cfg.Noise < 0 || cfg.Noise > 1 {
		return ErrBadNoise
	}

	return nil
}
