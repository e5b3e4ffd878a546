package grouping

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cell is one sparse-order loading record: the value of item on factor.
type Cell struct {
	Item   string
	Factor string
	Value  float64
}

// Loadings is a dense item×factor matrix of signed real loadings.
// Every declared item carries a value for every declared factor.
// Immutable after construction; sign is stored as given and consumers
// take magnitudes.
type Loadings struct {
	items     []string
	factors   []string
	itemIdx   map[string]int
	factorIdx map[string]int
	data      *mat.Dense // rows = items, cols = factors
}

// NewLoadings builds a Loadings matrix from a row-major value slice:
// values[i*len(factors)+j] is the loading of items[i] on factors[j].
//
// Errors:
//   - ErrEmptyLoadings if items or factors is empty.
//   - ErrEmptyLabel on a blank item or factor label.
//   - ErrDuplicateItem / ErrDuplicateFactor on repeated labels.
//   - ErrShapeMismatch if len(values) != len(items)*len(factors).
//   - ErrNotFinite on any NaN or ±Inf value.
//
// Complexity: O(items×factors).
func NewLoadings(items, factors []string, values []float64) (*Loadings, error) {
	l, err := newEmptyLoadings(items, factors)
	if err != nil {
		return nil, err
	}
	if len(values) != len(items)*len(factors) {
		return nil, fmt.Errorf("got %d values for %d×%d: %w",
			len(values), len(items), len(factors), ErrShapeMismatch)
	}
	for k, v := range values {
		if !isFinite(v) {
			return nil, fmt.Errorf("item %q factor %q: %w",
				items[k/len(factors)], factors[k%len(factors)], ErrNotFinite)
		}
	}

	vals := make([]float64, len(values))
	copy(vals, values)
	l.data = mat.NewDense(len(items), len(factors), vals)

	return l, nil
}

// NewLoadingsFromCells builds a Loadings matrix from (item, factor, value)
// records in any order. Item and factor orders are first-seen orders.
// The grid must be complete: every declared item needs a value for every
// declared factor.
//
// Errors: as NewLoadings, plus ErrDuplicateCell on a repeated (item, factor)
// pair and ErrMissingLoading when the grid has holes.
//
// Complexity: O(cells + items×factors).
func NewLoadingsFromCells(cells []Cell) (*Loadings, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyLoadings
	}

	var items, factors []string
	itemIdx := make(map[string]int)
	factorIdx := make(map[string]int)
	for _, c := range cells {
		if c.Item == "" || c.Factor == "" {
			return nil, fmt.Errorf("cell %q×%q: %w", c.Item, c.Factor, ErrEmptyLabel)
		}
		if _, ok := itemIdx[c.Item]; !ok {
			itemIdx[c.Item] = len(items)
			items = append(items, c.Item)
		}
		if _, ok := factorIdx[c.Factor]; !ok {
			factorIdx[c.Factor] = len(factors)
			factors = append(factors, c.Factor)
		}
	}

	n, m := len(items), len(factors)
	data := mat.NewDense(n, m, nil)
	seen := make([]bool, n*m)
	for _, c := range cells {
		if !isFinite(c.Value) {
			return nil, fmt.Errorf("item %q factor %q: %w", c.Item, c.Factor, ErrNotFinite)
		}
		i, j := itemIdx[c.Item], factorIdx[c.Factor]
		if seen[i*m+j] {
			return nil, fmt.Errorf("item %q factor %q: %w", c.Item, c.Factor, ErrDuplicateCell)
		}
		seen[i*m+j] = true
		data.Set(i, j, c.Value)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if !seen[i*m+j] {
				return nil, fmt.Errorf("item %q factor %q: %w", items[i], factors[j], ErrMissingLoading)
			}
		}
	}

	return &Loadings{
		items:     items,
		factors:   factors,
		itemIdx:   itemIdx,
		factorIdx: factorIdx,
		data:      data,
	}, nil
}

// newEmptyLoadings validates labels and prepares indices; data is set by callers.
func newEmptyLoadings(items, factors []string) (*Loadings, error) {
	if len(items) == 0 || len(factors) == 0 {
		return nil, ErrEmptyLoadings
	}

	l := &Loadings{
		items:     make([]string, len(items)),
		factors:   make([]string, len(factors)),
		itemIdx:   make(map[string]int, len(items)),
		factorIdx: make(map[string]int, len(factors)),
	}
	copy(l.items, items)
	copy(l.factors, factors)

	for i, it := range items {
		if it == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := l.itemIdx[it]; dup {
			return nil, fmt.Errorf("item %q: %w", it, ErrDuplicateItem)
		}
		l.itemIdx[it] = i
	}
	for j, f := range factors {
		if f == "" {
			return nil, fmt.Errorf("factor %d: %w", j, ErrEmptyLabel)
		}
		if _, dup := l.factorIdx[f]; dup {
			return nil, fmt.Errorf("factor %q: %w", f, ErrDuplicateFactor)
		}
		l.factorIdx[f] = j
	}

	return l, nil
}

// NumItems returns the number of items (matrix rows).
func (l *Loadings) NumItems() int { return len(l.items) }

// NumFactors returns the number of factors (matrix columns).
func (l *Loadings) NumFactors() int { return len(l.factors) }

// Items returns the item IDs in declaration order (copy).
func (l *Loadings) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)

	return out
}

// Factors returns the factor labels in declaration order (copy).
func (l *Loadings) Factors() []string {
	out := make([]string, len(l.factors))
	copy(out, l.factors)

	return out
}

// Contains reports whether item has a row in the matrix.
func (l *Loadings) Contains(item string) bool {
	_, ok := l.itemIdx[item]

	return ok
}

// At returns the signed loading of item on factor.
// Errors: ErrUnknownItem or ErrUnknownFactor on undeclared labels.
func (l *Loadings) At(item, factor string) (float64, error) {
	i, ok := l.itemIdx[item]
	if !ok {
		return 0, fmt.Errorf("%q: %w", item, ErrUnknownItem)
	}
	j, ok := l.factorIdx[factor]
	if !ok {
		return 0, fmt.Errorf("%q: %w", factor, ErrUnknownFactor)
	}

	return l.data.At(i, j), nil
}

// Row returns a copy of item's loading vector (factor declaration order)
// and whether the item is present.
func (l *Loadings) Row(item string) ([]float64, bool) {
	i, ok := l.itemIdx[item]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(l.factors))
	copy(out, l.data.RawRowView(i))

	return out, true
}

// Matrix exposes the backing item×factor matrix as a read-only mat.Matrix.
// Callers must not type-assert and mutate it.
func (l *Loadings) Matrix() mat.Matrix { return l.data }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
