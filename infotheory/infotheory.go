package infotheory

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lingstat/tidylens/contingency"
)

// ErrNilJoint indicates a nil joint distribution argument.
var ErrNilJoint = errors.New("infotheory: joint distribution is nil")

// MutualInformation computes I(G;F) in bits over the joint distribution:
// the expected log2 ratio of joint to product-of-marginals probability.
// Cells with zero joint probability are skipped.
//
// The result is clamped at 0: mathematically I ≥ 0, and tiny negative FP
// residue must not leak to callers dividing by entropies.
func MutualInformation(j *contingency.Joint) (float64, error) {
	if j == nil {
		return 0, ErrNilJoint
	}

	var (
		rowM = j.RowMarginals()
		colM = j.ColMarginals()
		info float64
	)
	for g := 0; g < j.NumGroups(); g++ {
		for f := 0; f < j.NumFactors(); f++ {
			p := j.P(g, f)
			if p <= 0 {
				continue
			}
			info += p * math.Log2(p/(rowM[g]*colM[f]))
		}
	}
	if info < 0 {
		info = 0
	}

	return info, nil
}

// JointEntropy computes H(G,F) in bits over the joint distribution,
// skipping zero cells. Implemented as the nat-entropy of the flattened
// cell probabilities rescaled to bits.
func JointEntropy(j *contingency.Joint) (float64, error) {
	if j == nil {
		return 0, ErrNilJoint
	}

	return stat.Entropy(j.Probabilities()) / math.Ln2, nil
}

// Entropy computes the Shannon entropy in bits of a single normalized
// distribution (for example a Joint's marginals), skipping zero entries.
func Entropy(dist []float64) float64 {
	return stat.Entropy(dist) / math.Ln2
}
