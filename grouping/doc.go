// Package grouping defines the two input groupings of the tidiness
// computation: a hard Partition of items into mutually exclusive groups,
// and a graded Loadings matrix assigning every item a signed real loading
// on every factor.
//
// Both types are immutable after construction and validated up front:
//
//   - Partition — unique, non-empty item IDs, each mapped to exactly one
//     non-empty group label. Group order is first-seen order, so derived
//     tables are deterministic.
//   - Loadings — a dense item×factor matrix backed by gonum's mat.Dense.
//     Every (item, factor) cell must be present and finite; the sign is
//     stored as given (consumers take magnitudes).
//
// Construction paths:
//
//	NewPartition(assignments)          — from (item, group) records
//	NewLoadings(items, factors, vals)  — from a row-major value slice
//	NewLoadingsFromCells(cells)        — from sparse-order (item, factor, value)
//	                                     records; incomplete grids are rejected
//	ReadPartitionCSV / ReadLoadingsCSV — from headered CSV files
//
// Errors (sentinel, matched via errors.Is):
//
//	ErrEmptyPartition, ErrEmptyLoadings — no rows / no items / no factors
//	ErrEmptyLabel                       — blank item, group or factor label
//	ErrDuplicateItem, ErrDuplicateFactor, ErrDuplicateCell
//	ErrShapeMismatch                    — value count ≠ items×factors
//	ErrMissingLoading                   — declared (item, factor) cell absent
//	ErrNotFinite                        — NaN or ±Inf loading
//	ErrUnknownItem, ErrUnknownFactor    — lookup of an undeclared label
//	ErrBadCSV, ErrBadLoadingValue       — malformed CSV input
//
// Complexity: all constructors are O(items×factors) time and memory;
// lookups are O(1) via internal label indices.
package grouping
