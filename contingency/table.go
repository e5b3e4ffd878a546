package contingency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/lingstat/tidylens/grouping"
)

// Table is the aggregated group×factor weight table: cell (g, f) holds the
// sum of absolute loadings on factor f over the items assigned to group g.
// Immutable after Build.
type Table struct {
	groups  []string
	factors []string
	weights *mat.Dense // groups × factors, non-negative
	total   float64
	dropped int
}

// Build aggregates the partition and loadings into a Table under the given
// coverage policy. Group rows follow the partition's first-seen group
// order; factor columns follow the loadings' declaration order.
//
// Errors:
//   - ErrNilInput on a nil partition or loadings.
//   - ErrBadPolicy on an out-of-range policy value.
//   - ErrCoverageMismatch (wrapped with the offending item) under
//     RequireFullCoverage when the item sets differ.
//   - ErrEmptyTable when the grand total is zero.
//
// Complexity: O(items×factors) time, O(groups×factors) memory.
func Build(p *grouping.Partition, l *grouping.Loadings, policy CoveragePolicy) (*Table, error) {
	if p == nil || l == nil {
		return nil, ErrNilInput
	}
	if policy != DropUnmatched && policy != RequireFullCoverage {
		return nil, fmt.Errorf("policy %d: %w", policy, ErrBadPolicy)
	}

	t := &Table{
		groups:  p.Groups(),
		factors: l.Factors(),
	}
	groupIdx := make(map[string]int, len(t.groups))
	for i, g := range t.groups {
		groupIdx[g] = i
	}
	t.weights = mat.NewDense(len(t.groups), len(t.factors), nil)

	// Inner join over the two item sets, in partition order.
	for _, item := range p.Items() {
		row, ok := l.Row(item)
		if !ok {
			if policy == RequireFullCoverage {
				return nil, fmt.Errorf("item %q has no loadings: %w", item, ErrCoverageMismatch)
			}
			t.dropped++

			continue
		}
		g, _ := p.GroupOf(item)
		gi := groupIdx[g]
		for j, v := range row {
			t.weights.Set(gi, j, t.weights.At(gi, j)+math.Abs(v))
		}
	}

	// Items declared only on the loadings side.
	for _, item := range l.Items() {
		if p.Contains(item) {
			continue
		}
		if policy == RequireFullCoverage {
			return nil, fmt.Errorf("item %q has no group: %w", item, ErrCoverageMismatch)
		}
		t.dropped++
	}

	t.total = floats.Sum(t.weights.RawMatrix().Data)
	if t.total == 0 {
		return nil, ErrEmptyTable
	}

	return t, nil
}

// Groups returns the group labels in row order (copy).
func (t *Table) Groups() []string {
	out := make([]string, len(t.groups))
	copy(out, t.groups)

	return out
}

// Factors returns the factor labels in column order (copy).
func (t *Table) Factors() []string {
	out := make([]string, len(t.factors))
	copy(out, t.factors)

	return out
}

// Weight returns the aggregated absolute-loading weight of cell (g, f).
// Indices are positional; out-of-range indices panic as on any dense matrix.
func (t *Table) Weight(g, f int) float64 { return t.weights.At(g, f) }

// Total returns the grand total of all weights. Always > 0 for a built Table.
func (t *Table) Total() float64 { return t.total }

// DroppedItems returns how many unmatched items the inner join dropped
// under DropUnmatched. Zero under RequireFullCoverage.
func (t *Table) DroppedItems() int { return t.dropped }

// Joint normalizes the table by its grand total into a Joint distribution
// with cached marginals.
//
// Complexity: O(groups×factors).
func (t *Table) Joint() *Joint {
	n, m := len(t.groups), len(t.factors)
	p := mat.NewDense(n, m, nil)
	p.Scale(1/t.total, t.weights)

	j := &Joint{
		groups:  t.Groups(),
		factors: t.Factors(),
		p:       p,
		rowM:    make([]float64, n),
		colM:    make([]float64, m),
	}
	for g := 0; g < n; g++ {
		j.rowM[g] = floats.Sum(p.RawRowView(g))
	}
	col := make([]float64, n)
	for f := 0; f < m; f++ {
		mat.Col(col, f, p)
		j.colM[f] = floats.Sum(col)
	}

	return j
}

// Joint is a normalized joint distribution over (group, factor) cells,
// together with its row (group) and column (factor) marginals.
type Joint struct {
	groups  []string
	factors []string
	p       *mat.Dense
	rowM    []float64
	colM    []float64
}

// NumGroups returns the number of groups (rows).
func (j *Joint) NumGroups() int { return len(j.groups) }

// NumFactors returns the number of factors (columns).
func (j *Joint) NumFactors() int { return len(j.factors) }

// Groups returns the group labels in row order (copy).
func (j *Joint) Groups() []string {
	out := make([]string, len(j.groups))
	copy(out, j.groups)

	return out
}

// Factors returns the factor labels in column order (copy).
func (j *Joint) Factors() []string {
	out := make([]string, len(j.factors))
	copy(out, j.factors)

	return out
}

// P returns the joint probability of cell (g, f).
func (j *Joint) P(g, f int) float64 { return j.p.At(g, f) }

// RowMarginals returns the group marginal distribution p(g) (copy).
func (j *Joint) RowMarginals() []float64 {
	out := make([]float64, len(j.rowM))
	copy(out, j.rowM)

	return out
}

// ColMarginals returns the factor marginal distribution p(f) (copy).
func (j *Joint) ColMarginals() []float64 {
	out := make([]float64, len(j.colM))
	copy(out, j.colM)

	return out
}

// Probabilities returns the flattened row-major joint probabilities (copy).
// Handy for bulk reductions over all cells.
func (j *Joint) Probabilities() []float64 {
	raw := j.p.RawMatrix().Data
	out := make([]float64, len(raw))
	copy(out, raw)

	return out
}
