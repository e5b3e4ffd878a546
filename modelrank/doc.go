// Package modelrank turns the tidiness score into a model-selection sweep:
// score many candidate factor solutions against one reference partition and
// rank them tidiest-first.
//
// A Candidate is a named grouping.Loadings matrix — typically one factor
// solution per candidate factor count or rotation. Rank scores every
// candidate with the same tidiness.Options and sorts the results:
//
//  1. candidates that scored cleanly, descending by Score;
//  2. ties broken by fewer factors (the more parsimonious model wins),
//     then by name;
//  3. candidates whose scoring failed, last, with the failure preserved
//     in ModelScore.Err.
//
// A per-candidate failure (degenerate input, coverage mismatch) does not
// abort the sweep: an analyst comparing eight solutions still wants the
// other seven ranked. Rank itself fails only on unusable input — nil
// partition, no candidates, duplicate candidate names.
//
// Determinism: the ordering is total, so equal inputs always produce the
// same ranking.
package modelrank
