// Package tidylens scores how cleanly a hard clustering of linguistic
// features lines up with a graded factor-analysis model over the same
// features — one number, "tidiness", in [0,1].
//
// 🚀 What is tidylens?
//
//	A small, pure library for multi-dimensional-analysis model comparison:
//		• Input model: hard item→group partition + item×factor loading matrix
//		• Joint table: group×factor absolute-loading weights (contingency/)
//		• Information reductions: mutual information & joint entropy in bits (infotheory/)
//		• The score: tidiness = I / H, normalized mutual information (tidiness/)
//		• Model sweeps: rank many candidate factor solutions (modelrank/)
//		• Synthetic data: planted-correspondence generators for experiments (synth/)
//
// ✨ Why choose tidylens?
//
//   - Deterministic – pure functions, seeded generators, no global state
//   - Strict sentinels – every failure is a named error, matched via errors.Is
//   - Two independent compute paths – looped and vectorized, cross-checked in tests
//   - Explicit policies – unmatched items and zero-entropy inputs are caller decisions,
//     never silent NaNs
//
// Everything is organized under focused subpackages:
//
//	grouping/    — Partition & Loadings input types + CSV ingestion
//	contingency/ — joint group×factor weight table, joint & marginal distributions
//	infotheory/  — log2 entropy and mutual information over a joint distribution
//	tidiness/    — the tidiness score: options, result, degenerate handling
//	modelrank/   — score and rank candidate factor models against one partition
//	synth/       — deterministic synthetic partitions & loadings
//	cmd/         — the tidylens CLI (score, compare, synth)
//
// Quick sketch:
//
//	 clusters            loadings (|·|)          joint weights
//	 A→c1  B→c1          f1    f2                    f1    f2
//	 C→c2  D→c2     A   .10   .50      ⇒     c1    .15  1.05
//	                B   .05   .55            c2   1.30   .22
//	                C   .60   .02
//	                D   .70   .20       tidiness = I/H ≈ 0.271
//
// Higher tidiness ⇒ knowing an item's cluster tells you more about where
// its loading mass sits, i.e. a tidier, less tangled correspondence.
//
// Dive into examples/ for runnable scenarios and each package's doc.go for
// contracts, complexity notes and the full error taxonomy.
//
//	go get github.com/lingstat/tidylens
package tidylens
