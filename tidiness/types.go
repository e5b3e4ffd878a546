package tidiness

import (
	"errors"

	"github.com/lingstat/tidylens/contingency"
)

// Sentinel errors returned by Score. Coverage and table errors are
// forwarded from the contingency package; match everything via errors.Is.
var (
	// ErrNilInput indicates a nil partition or loadings argument.
	ErrNilInput = errors.New("tidiness: nil partition or loadings")

	// ErrDegenerateInput indicates a joint distribution with zero entropy —
	// all weight concentrated in a single group×factor cell — under the
	// default DegenerateError policy. tidiness = I/H is undefined there.
	ErrDegenerateInput = errors.New("tidiness: joint entropy is zero, score undefined")

	// ErrBadMode indicates an out-of-range ComputeMode value.
	ErrBadMode = errors.New("tidiness: unknown compute mode")

	// ErrBadDegeneratePolicy indicates an out-of-range DegeneratePolicy value.
	ErrBadDegeneratePolicy = errors.New("tidiness: unknown degenerate policy")

	// ErrBadEps indicates a negative entropy tolerance.
	ErrBadEps = errors.New("tidiness: Eps must be non-negative")
)

// ComputeMode selects the implementation used for the reductions.
//
//   - Vectorized — bulk operations over dense gonum matrices; the default
//     and the faster path.
//   - Looped     — per-triple accumulation over label-keyed maps, a direct
//     transcription of the manual derivation. Kept as an independent
//     cross-check of the vectorized path.
//
// Both modes produce identical results up to FP tolerance.
type ComputeMode int

const (
	// Vectorized uses the dense-matrix bulk path (default).
	Vectorized ComputeMode = iota

	// Looped uses straight per-triple accumulation.
	Looped
)

// DegeneratePolicy decides what a zero-entropy joint distribution yields.
//
// A single-cell distribution carries no uncertainty and no shared
// information, so I/H is 0/0. The source material never exercises this
// case, so the resolution is an explicit caller decision:
//
//   - DegenerateError — fail with ErrDegenerateInput (default).
//   - DegenerateOne   — define the score as 1.0 (one group, one factor,
//     perfect correspondence) and set Result.Degenerate.
type DegeneratePolicy int

const (
	// DegenerateError fails zero-entropy inputs with ErrDegenerateInput (default).
	DegenerateError DegeneratePolicy = iota

	// DegenerateOne scores zero-entropy inputs as 1.0, flagged on the Result.
	DegenerateOne
)

// DefaultEps is the default tolerance below which the joint entropy is
// treated as zero. Exact single-cell inputs give H == 0 exactly; the
// tolerance guards cells whose probability is within FP dust of 1.
const DefaultEps = 1e-12

// Options configures Score.
//
// Coverage   – fate of items present in only one grouping
// (DropUnmatched by default, matching the source's inner join).
// Degenerate – fate of zero-entropy inputs (DegenerateError by default).
// Mode       – Vectorized (default) or Looped implementation.
// Eps        – entropy values ≤ Eps count as zero. Must be ≥ 0.
type Options struct {
	Coverage   contingency.CoveragePolicy
	Degenerate DegeneratePolicy
	Mode       ComputeMode
	Eps        float64
}

// DefaultOptions returns the canonical configuration:
// drop unmatched items, fail on degenerate input, vectorized path,
// Eps = DefaultEps.
func DefaultOptions() Options {
	return Options{
		Coverage:   contingency.DropUnmatched,
		Degenerate: DegenerateError,
		Mode:       Vectorized,
		Eps:        DefaultEps,
	}
}

// Result carries the score and the intermediates it was derived from.
type Result struct {
	// Score is the tidiness value I/H in [0,1]
	// (1.0 by definition for degenerate inputs under DegenerateOne).
	Score float64

	// MutualInformation is I(G;F) in bits.
	MutualInformation float64

	// JointEntropy is H(G,F) in bits.
	JointEntropy float64

	// Table is the aggregated group×factor weight table behind the score.
	Table *contingency.Table

	// DroppedItems counts items the inner join dropped under DropUnmatched.
	DroppedItems int

	// Degenerate marks a zero-entropy input scored under DegenerateOne.
	Degenerate bool
}
