// Package synth generates deterministic synthetic partitions and loading
// matrices with a planted group→factor correspondence — fixtures for
// benchmarks, property tests and experiments with the tidiness score.
//
// Generate deals Items round-robin into Groups, assigns each group a home
// factor (group index mod Factors), and fills the loading matrix:
//
//   - home-factor cells get magnitude in [0.75, 1.25)
//   - off-factor cells get magnitude in [0, Noise)
//   - every cell's sign is flipped with probability ½ (magnitudes are what
//     the tidiness computation consumes, so signs exercise the |·| path)
//
// All randomness flows from a single seeded math/rand.Rand: the same
// Config always yields the same data, on every platform. Seed == 0 selects
// a fixed default seed rather than a time-based one.
//
// Noise behavior:
//   - Noise == 0 ⇒ every group loads on exactly one factor; when no two
//     groups share a home factor the tidiness of the pair is exactly 1.
//   - Noise → 1 ⇒ off-factor mass approaches home mass and tidiness
//     decays toward 0.
//
// Complexity: O(Items×Factors) time and memory.
package synth
