package modelrank

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lingstat/tidylens/grouping"
	"github.com/lingstat/tidylens/tidiness"
)

// Sentinel errors returned by Rank. Match via errors.Is.
var (
	// ErrNilPartition indicates a nil reference partition.
	ErrNilPartition = errors.New("modelrank: partition is nil")

	// ErrNoCandidates indicates an empty candidate list.
	ErrNoCandidates = errors.New("modelrank: no candidates to rank")

	// ErrNilCandidate indicates a candidate with nil loadings.
	ErrNilCandidate = errors.New("modelrank: candidate has nil loadings")

	// ErrEmptyName indicates a candidate with a blank name.
	ErrEmptyName = errors.New("modelrank: candidate name is empty")

	// ErrDuplicateName indicates two candidates sharing a name.
	ErrDuplicateName = errors.New("modelrank: duplicate candidate name")
)

// Candidate is one named factor solution to score.
type Candidate struct {
	Name     string
	Loadings *grouping.Loadings
}

// ModelScore is one ranked sweep entry. When Err is non-nil the candidate
// failed to score; Score and Result are zero values and the entry sorts
// after every clean one.
type ModelScore struct {
	Name    string
	Factors int
	Score   float64
	Result  tidiness.Result
	Err     error
}

// Rank scores every candidate against p with the given options (nil opts
// selects tidiness.DefaultOptions) and returns the entries tidiest-first.
//
// Errors: ErrNilPartition, ErrNoCandidates, ErrNilCandidate, ErrEmptyName,
// ErrDuplicateName — all input problems. Per-candidate scoring failures
// land in ModelScore.Err instead.
//
// Complexity: O(Σ items×factors) scoring + O(c log c) sorting for c candidates.
func Rank(p *grouping.Partition, candidates []Candidate, opts *tidiness.Options) ([]ModelScore, error) {
	if p == nil {
		return nil, ErrNilPartition
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c.Name == "" {
			return nil, ErrEmptyName
		}
		if c.Loadings == nil {
			return nil, fmt.Errorf("candidate %q: %w", c.Name, ErrNilCandidate)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("candidate %q: %w", c.Name, ErrDuplicateName)
		}
		seen[c.Name] = struct{}{}
	}

	scores := make([]ModelScore, len(candidates))
	for i, c := range candidates {
		entry := ModelScore{
			Name:    c.Name,
			Factors: c.Loadings.NumFactors(),
		}
		res, err := tidiness.Score(p, c.Loadings, opts)
		if err != nil {
			entry.Err = err
		} else {
			entry.Score = res.Score
			entry.Result = res
		}
		scores[i] = entry
	}

	sort.SliceStable(scores, func(a, b int) bool {
		sa, sb := scores[a], scores[b]
		if (sa.Err == nil) != (sb.Err == nil) {
			return sa.Err == nil // clean entries first
		}
		if sa.Score != sb.Score {
			return sa.Score > sb.Score
		}
		if sa.Factors != sb.Factors {
			return sa.Factors < sb.Factors // parsimony breaks ties
		}

		return sa.Name < sb.Name
	})

	return scores, nil
}
