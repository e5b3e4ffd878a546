package contingency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingstat/tidylens/contingency"
	"github.com/lingstat/tidylens/grouping"
)

const tol = 1e-12

// narrativeInputs builds the worked example from the source material:
// clusters c1={A,B}, c2={C,D} and the signed two-factor loadings.
func narrativeInputs(t *testing.T) (*grouping.Partition, *grouping.Loadings) {
	t.Helper()

	p, err := grouping.NewPartition([]grouping.Assignment{
		{Item: "A", Group: "c1"},
		{Item: "B", Group: "c1"},
		{Item: "C", Group: "c2"},
		{Item: "D", Group: "c2"},
	})
	require.NoError(t, err)

	l, err := grouping.NewLoadings(
		[]string{"A", "B", "C", "D"},
		[]string{"f1", "f2"},
		[]float64{
			0.10, -0.50,
			0.05, 0.55,
			0.60, -0.02,
			-0.70, 0.20,
		},
	)
	require.NoError(t, err)

	return p, l
}

// TestBuild_NarrativeWeights verifies the aggregated absolute weights and
// the grand total of the worked example.
func TestBuild_NarrativeWeights(t *testing.T) {
	p, l := narrativeInputs(t)

	table, err := contingency.Build(p, l, contingency.DropUnmatched)
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2"}, table.Groups())
	assert.Equal(t, []string{"f1", "f2"}, table.Factors())
	assert.InDelta(t, 0.15, table.Weight(0, 0), tol, "c1×f1 = |.1|+|.05|")
	assert.InDelta(t, 1.05, table.Weight(0, 1), tol, "c1×f2 = |-.5|+|.55|")
	assert.InDelta(t, 1.30, table.Weight(1, 0), tol, "c2×f1 = |.6|+|-.7|")
	assert.InDelta(t, 0.22, table.Weight(1, 1), tol, "c2×f2 = |-.02|+|.2|")
	assert.InDelta(t, 2.72, table.Total(), tol)
	assert.Zero(t, table.DroppedItems())
}

// TestBuild_NilAndPolicy verifies the input guards.
func TestBuild_NilAndPolicy(t *testing.T) {
	p, l := narrativeInputs(t)

	_, err := contingency.Build(nil, l, contingency.DropUnmatched)
	assert.ErrorIs(t, err, contingency.ErrNilInput)

	_, err = contingency.Build(p, nil, contingency.DropUnmatched)
	assert.ErrorIs(t, err, contingency.ErrNilInput)

	_, err = contingency.Build(p, l, contingency.CoveragePolicy(99))
	assert.ErrorIs(t, err, contingency.ErrBadPolicy)
}

// TestBuild_Coverage verifies both sides of the coverage policy: the inner
// join drops unmatched items silently, strict mode rejects them.
func TestBuild_Coverage(t *testing.T) {
	p, err := grouping.NewPartition([]grouping.Assignment{
		{Item: "A", Group: "c1"},
		{Item: "B", Group: "c1"},
		{Item: "X", Group: "c2"}, // no loadings row
	})
	require.NoError(t, err)

	l, err := grouping.NewLoadings(
		[]string{"A", "B", "Y"}, // Y has no group
		[]string{"f1", "f2"},
		[]float64{1, 0, 0, 1, 0.5, 0.5},
	)
	require.NoError(t, err)

	table, err := contingency.Build(p, l, contingency.DropUnmatched)
	require.NoError(t, err)
	assert.Equal(t, 2, table.DroppedItems(), "X and Y both dropped")
	assert.InDelta(t, 2.0, table.Total(), tol, "only A and B contribute")

	_, err = contingency.Build(p, l, contingency.RequireFullCoverage)
	assert.ErrorIs(t, err, contingency.ErrCoverageMismatch)
}

// TestBuild_EmptyTable verifies ErrEmptyTable for disjoint item sets and
// for matched items whose loadings are all zero.
func TestBuild_EmptyTable(t *testing.T) {
	p, err := grouping.NewPartition([]grouping.Assignment{{Item: "A", Group: "c1"}})
	require.NoError(t, err)

	disjoint, err := grouping.NewLoadings([]string{"B"}, []string{"f1"}, []float64{1})
	require.NoError(t, err)
	_, err = contingency.Build(p, disjoint, contingency.DropUnmatched)
	assert.ErrorIs(t, err, contingency.ErrEmptyTable)

	allZero, err := grouping.NewLoadings([]string{"A"}, []string{"f1", "f2"}, []float64{0, 0})
	require.NoError(t, err)
	_, err = contingency.Build(p, allZero, contingency.DropUnmatched)
	assert.ErrorIs(t, err, contingency.ErrEmptyTable)
}

// TestJoint_Distributions verifies the normalization invariants: joint and
// both marginals each sum to 1, and every cell matches W/total.
func TestJoint_Distributions(t *testing.T) {
	p, l := narrativeInputs(t)
	table, err := contingency.Build(p, l, contingency.DropUnmatched)
	require.NoError(t, err)

	joint := table.Joint()
	assert.Equal(t, 2, joint.NumGroups())
	assert.Equal(t, 2, joint.NumFactors())

	var sum float64
	for g := 0; g < joint.NumGroups(); g++ {
		for f := 0; f < joint.NumFactors(); f++ {
			pj := joint.P(g, f)
			assert.GreaterOrEqual(t, pj, 0.0)
			assert.LessOrEqual(t, pj, 1.0)
			assert.InDelta(t, table.Weight(g, f)/table.Total(), pj, tol)
			sum += pj
		}
	}
	assert.InDelta(t, 1.0, sum, tol, "joint sums to 1")

	rowM := joint.RowMarginals()
	assert.InDelta(t, 1.20/2.72, rowM[0], tol)
	assert.InDelta(t, 1.52/2.72, rowM[1], tol)
	assert.InDelta(t, 1.0, rowM[0]+rowM[1], tol, "row marginal sums to 1")

	colM := joint.ColMarginals()
	assert.InDelta(t, 1.45/2.72, colM[0], tol)
	assert.InDelta(t, 1.27/2.72, colM[1], tol)
	assert.InDelta(t, 1.0, colM[0]+colM[1], tol, "column marginal sums to 1")
}

// TestJoint_Probabilities verifies the flattened row-major view.
func TestJoint_Probabilities(t *testing.T) {
	p, l := narrativeInputs(t)
	table, err := contingency.Build(p, l, contingency.DropUnmatched)
	require.NoError(t, err)

	probs := table.Joint().Probabilities()
	require.Len(t, probs, 4)
	assert.InDelta(t, 0.15/2.72, probs[0], tol)
	assert.InDelta(t, 1.05/2.72, probs[1], tol)
	assert.InDelta(t, 1.30/2.72, probs[2], tol)
	assert.InDelta(t, 0.22/2.72, probs[3], tol)
}

// TestCoveragePolicy_String covers the Stringer for diagnostics.
func TestCoveragePolicy_String(t *testing.T) {
	assert.Equal(t, "drop-unmatched", contingency.DropUnmatched.String())
	assert.Equal(t, "require-full-coverage", contingency.RequireFullCoverage.String())
	assert.Equal(t, "unknown", contingency.CoveragePolicy(42).String())
}
