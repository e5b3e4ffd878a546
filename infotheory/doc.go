// Package infotheory provides the two log2 reductions the tidiness score
// is built from, computed over a contingency.Joint distribution:
//
//	MutualInformation  I = Σ_g Σ_f p(g,f) · log2( p(g,f) / (p(g)·p(f)) )
//	JointEntropy       H = −Σ_g Σ_f p(g,f) · log2 p(g,f)
//
// Zero-probability cells contribute nothing, consistent with the limit
// x·log x → 0 as x → 0; no NaN can escape either function on a valid Joint.
//
// Guarantees (up to FP tolerance): I ≥ 0, H ≥ 0 and I ≤ H. Negative FP
// dust on I is clamped to 0 so information-theoretic bounds hold exactly
// for callers.
//
// Complexity: both reductions are O(groups×factors) time, O(1) extra memory
// beyond the marginal copies.
package infotheory
