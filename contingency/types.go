package contingency

import "errors"

// Sentinel errors returned by this package. Match via errors.Is.
var (
	// ErrNilInput indicates a nil partition or loadings argument.
	ErrNilInput = errors.New("contingency: nil partition or loadings")

	// ErrCoverageMismatch indicates an item present in only one of the two
	// groupings while RequireFullCoverage is in force.
	ErrCoverageMismatch = errors.New("contingency: item sets do not fully overlap")

	// ErrEmptyTable indicates a joint table with zero grand total: the item
	// sets are disjoint, or every matched loading is zero. Such a table has
	// no joint distribution.
	ErrEmptyTable = errors.New("contingency: joint table has zero total weight")

	// ErrBadPolicy indicates an out-of-range CoveragePolicy value.
	ErrBadPolicy = errors.New("contingency: unknown coverage policy")
)

// CoveragePolicy decides the fate of items present in only one of the two
// input groupings.
//
//   - DropUnmatched       — inner-join semantics: unmatched items are
//     silently dropped; Table.DroppedItems counts them.
//   - RequireFullCoverage — any unmatched item fails Build with
//     ErrCoverageMismatch.
type CoveragePolicy int

const (
	// DropUnmatched drops items missing from either grouping (default).
	DropUnmatched CoveragePolicy = iota

	// RequireFullCoverage rejects inputs whose item sets differ.
	RequireFullCoverage
)

// String implements fmt.Stringer for diagnostics.
func (c CoveragePolicy) String() string {
	switch c {
	case DropUnmatched:
		return "drop-unmatched"
	case RequireFullCoverage:
		return "require-full-coverage"
	default:
		return "unknown"
	}
}
