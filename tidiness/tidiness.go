package tidiness

import (
	"fmt"
	"math"

	"github.com/lingstat/tidylens/contingency"
	"github.com/lingstat/tidylens/grouping"
	"github.com/lingstat/tidylens/infotheory"
)

// Score computes the tidiness of partition p against loadings l.
// A nil opts selects DefaultOptions.
//
// Errors:
//   - ErrNilInput on nil p or l.
//   - ErrBadMode / ErrBadDegeneratePolicy / ErrBadEps,
//     contingency.ErrBadPolicy on invalid options.
//   - contingency.ErrCoverageMismatch under RequireFullCoverage when the
//     item sets differ.
//   - contingency.ErrEmptyTable when no overlapping item carries weight.
//   - ErrDegenerateInput when H == 0 under DegenerateError.
//
// Complexity: O(items×factors) time, O(groups×factors) memory.
func Score(p *grouping.Partition, l *grouping.Loadings, opts *Options) (Result, error) {
	if p == nil || l == nil {
		return Result{}, ErrNilInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	// Build validates coverage and rejects zero-total tables for both modes,
	// and its Table is part of the Result either way.
	table, err := contingency.Build(p, l, o.Coverage)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Table:        table,
		DroppedItems: table.DroppedItems(),
	}
	switch o.Mode {
	case Vectorized:
		res.MutualInformation, res.JointEntropy, err = reduceVectorized(table)
	case Looped:
		res.MutualInformation, res.JointEntropy = reduceLooped(p, l)
	}
	if err != nil {
		return Result{}, err
	}

	if res.JointEntropy <= o.Eps {
		if o.Degenerate == DegenerateError {
			return Result{}, ErrDegenerateInput
		}
		res.Score = 1.0
		res.Degenerate = true

		return res, nil
	}

	res.Score = clamp01(res.MutualInformation / res.JointEntropy)

	return res, nil
}

// validateOptions rejects out-of-range option values with strict sentinels.
func validateOptions(o Options) error {
	if o.Mode != Vectorized && o.Mode != Looped {
		return fmt.Errorf("mode %d: %w", o.Mode, ErrBadMode)
	}
	if o.Degenerate != DegenerateError && o.Degenerate != DegenerateOne {
		return fmt.Errorf("policy %d: %w", o.Degenerate, ErrBadDegeneratePolicy)
	}
	if o.Eps < 0 {
		return ErrBadEps
	}

	return nil
}

// reduceVectorized derives I and H from the normalized table via the
// infotheory bulk reductions.
func reduceVectorized(table *contingency.Table) (info, entropy float64, err error) {
	joint := table.Joint()
	if info, err = infotheory.MutualInformation(joint); err != nil {
		return 0, 0, err
	}
	if entropy, err = infotheory.JointEntropy(joint); err != nil {
		return 0, 0, err
	}

	return info, entropy, nil
}

// reduceLooped recomputes I and H from the raw inputs with per-triple
// accumulation over label-keyed maps. It deliberately shares no code with
// the contingency/infotheory path so the two stay independent cross-checks.
// Unmatched items simply find no loading row, which is exactly the inner
// join of the vectorized path.
func reduceLooped(p *grouping.Partition, l *grouping.Loadings) (info, entropy float64) {
	type cell struct{ group, factor string }

	var (
		factors = l.Factors()
		weights = make(map[cell]float64, len(p.Groups())*len(factors))
		rowSum  = make(map[string]float64, len(p.Groups()))
		colSum  = make(map[string]float64, len(factors))
		total   float64
	)

	// Step 1–3: membership-gated absolute weights, aggregated per cell.
	for _, item := range p.Items() {
		row, ok := l.Row(item)
		if !ok {
			continue
		}
		g, _ := p.GroupOf(item)
		for j, v := range row {
			w := math.Abs(v)
			if w == 0 {
				continue
			}
			weights[cell{g, factors[j]}] += w
			total += w
		}
	}

	// Fixed label order keeps FP summation deterministic across runs.
	groups := p.Groups()

	// Step 4: marginals of the normalized table.
	for _, g := range groups {
		for _, f := range factors {
			pj := weights[cell{g, f}] / total
			rowSum[g] += pj
			colSum[f] += pj
		}
	}

	// Steps 5–6: log2 reductions; zero cells contribute nothing.
	for _, g := range groups {
		for _, f := range factors {
			pj := weights[cell{g, f}] / total
			if pj <= 0 {
				continue
			}
			info += pj * math.Log2(pj/(rowSum[g]*colSum[f]))
			entropy -= pj * math.Log2(pj)
		}
	}
	if info < 0 {
		info = 0
	}

	return info, entropy
}

// clamp01 pins FP dust so the published range [0,1] holds exactly.
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
