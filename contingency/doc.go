// Package contingency derives the joint group×factor event table at the
// heart of the tidiness computation.
//
// Given a hard grouping.Partition and a graded grouping.Loadings over a
// shared item set, Build aggregates
//
//	W[g,f] = Σ_{item assigned to g} |loading(item, f)|
//
// into a dense Table (rows = groups, cols = factors). The cross-item-set
// join is an inner join; what happens to items present in only one of the
// two groupings is a caller policy:
//
//   - DropUnmatched        — drop them silently (the historical behavior;
//     Table.DroppedItems reports how many were dropped)
//   - RequireFullCoverage  — fail with ErrCoverageMismatch
//
// Table.Joint normalizes by the grand total into a Joint distribution with
// cached row (group) and column (factor) marginals, computed with
// gonum/floats. Invariants, up to FP tolerance: every probability is in
// [0,1], the joint sums to 1, each marginal vector sums to 1.
//
// A table whose grand total is zero (disjoint item sets, or all-zero
// loadings) cannot be normalized; Build rejects it with ErrEmptyTable
// rather than letting a 0/0 leak downstream.
//
// Complexity: Build is O(items×factors) time, O(groups×factors) memory.
package contingency
