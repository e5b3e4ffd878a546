// Package tidiness computes the tidiness score: normalized mutual
// information between a hard partition of linguistic features and a graded
// factor model over the same features.
//
// 🚀 What is tidiness?
//
//	A single number in [0,1] answering: how well does knowing an item's
//	cluster predict where its factor-loading mass sits?
//	  1.0 — every group's items load on one exclusive factor (perfectly tidy)
//	  0.0 — every group spreads its weight identically across all factors
//	It is the comparison heuristic of multi-dimensional linguistic
//	analysis: score each candidate factor solution against a reference
//	clustering, prefer the tidier ones.
//
// Algorithm (base-2 logs throughout):
//  1. weight(item, g, f) = [item ∈ g] · |loading(item, f)|; zero-weight
//     triples contribute nothing and are skipped.
//  2. Aggregate weights into the group×factor table W; normalize by the
//     grand total into joint p(g,f) with marginals p(g), p(f).
//  3. I = Σ p·log2(p/(p(g)·p(f))), H = −Σ p·log2 p, zero cells skipped.
//  4. tidiness = I / H.
//
// Compute modes:
//   - Vectorized — bulk path over dense gonum matrices (default).
//   - Looped     — straight per-triple accumulation over label maps,
//     mirroring the original manual derivation.
//
// The two paths are independent implementations and must agree to FP
// tolerance; the tests cross-check them, so either can serve as the
// reference for the other.
//
// Policies (see Options):
//   - Coverage   — unmatched items: drop silently (default) or fail.
//   - Degenerate — H == 0 (all weight in one cell): fail with
//     ErrDegenerateInput (default) or define the score as 1.0 and mark
//     Result.Degenerate.
//
// Guarantees: 0 ≤ I ≤ H, hence Score ∈ [0,1] whenever H > 0; the result
// is a pure function of its inputs — no hidden state, no NaN escapes.
//
// ⚙️ Usage:
//
//	opts := tidiness.DefaultOptions()
//	res, err := tidiness.Score(partition, loadings, &opts)
//	if err != nil {
//	    // ErrDegenerateInput, contingency.ErrCoverageMismatch, ...
//	}
//	fmt.Printf("tidiness=%.3f (I=%.3f bits, H=%.3f bits)\n",
//	    res.Score, res.MutualInformation, res.JointEntropy)
//
// Complexity: O(items×factors) time, O(groups×factors) memory.
package tidiness
