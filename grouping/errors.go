package grouping

import "errors"

// Sentinel errors returned by constructors and accessors in this package.
// Constructors may wrap these with row/label context via fmt.Errorf("...: %w", ...);
// callers should always match with errors.Is.
var (
	// ErrEmptyPartition indicates a partition with no assignments.
	ErrEmptyPartition = errors.New("grouping: partition has no assignments")

	// ErrEmptyLoadings indicates a loadings matrix with no items or no factors.
	ErrEmptyLoadings = errors.New("grouping: loadings have no items or no factors")

	// ErrEmptyLabel indicates a blank item, group or factor label.
	ErrEmptyLabel = errors.New("grouping: empty label")

	// ErrDuplicateItem indicates the same item ID was declared twice.
	ErrDuplicateItem = errors.New("grouping: duplicate item")

	// ErrDuplicateFactor indicates the same factor label was declared twice.
	ErrDuplicateFactor = errors.New("grouping: duplicate factor")

	// ErrDuplicateCell indicates two loading values for one (item, factor) pair.
	ErrDuplicateCell = errors.New("grouping: duplicate loading cell")

	// ErrShapeMismatch indicates the value slice length differs from items×factors.
	ErrShapeMismatch = errors.New("grouping: value count does not match items×factors")

	// ErrMissingLoading indicates a declared (item, factor) pair with no value.
	ErrMissingLoading = errors.New("grouping: missing loading value")

	// ErrNotFinite indicates a NaN or ±Inf loading value.
	ErrNotFinite = errors.New("grouping: loading is NaN or Inf")

	// ErrUnknownItem indicates a lookup for an item not present in the grouping.
	ErrUnknownItem = errors.New("grouping: unknown item")

	// ErrUnknownFactor indicates a lookup for a factor not present in the loadings.
	ErrUnknownFactor = errors.New("grouping: unknown factor")

	// ErrBadCSV indicates a structurally malformed CSV input (missing header,
	// short record, empty body).
	ErrBadCSV = errors.New("grouping: malformed CSV input")

	// ErrBadLoadingValue indicates a CSV loading cell that does not parse as a float.
	ErrBadLoadingValue = errors.New("grouping: loading value does not parse")
)
