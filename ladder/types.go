package ladder

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the ladder package.
var (
	// ErrLengthMismatch is returned when two words that must share a length do not.
	ErrLengthMismatch = errors.New("ladder: words have different lengths")

	// ErrMissingAnchorWord is returned when the begin or end word has no vertex
	// after the dictionary has been filtered by length.
	ErrMissingAnchorWord = errors.New("ladder: anchor word missing from dictionary")

	// ErrNoPathFound is returned when no chain of neighbors connects the anchors.
	ErrNoPathFound = errors.New("ladder: no path found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ladder: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrResultMismatch is returned when a SearchResult was not produced for the given Graph.
	ErrResultMismatch = errors.New("ladder: search result does not match graph")

	// ErrCorruptPredecessors is returned when following predecessor links does not
	// reach the begin anchor within Graph.Len() steps.
	ErrCorruptPredecessors = errors.New("ladder: predecessor links do not reach the begin word")
)

const (
	// Unreached is the score of a vertex no path has reached yet.
	Unreached = math.MaxInt

	// NoVertex marks an absent vertex index: an unassigned anchor or a vertex
	// without a predecessor.
	NoVertex = -1
)

// FailureKind classifies the outcome of BuildAndSearch for callers that map
// failures onto messages or exit codes.
type FailureKind int

const (
	// FailureNone means a ladder was found.
	FailureNone FailureKind = iota
	// FailureLengthMismatch means the anchors differ in length.
	FailureLengthMismatch
	// FailureMissingAnchorWord means an anchor is absent from the filtered dictionary.
	FailureMissingAnchorWord
	// FailureNoPathFound means the anchors are not connected.
	FailureNoPathFound
	// FailureOther covers cancellation, invalid options and any other error.
	FailureOther
)

// String implements fmt.Stringer.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureLengthMismatch:
		return "length_mismatch"
	case FailureMissingAnchorWord:
		return "missing_anchor_word"
	case FailureNoPathFound:
		return "no_path_found"
	default:
		return "other"
	}
}

// Kind maps err onto a FailureKind. A nil error is FailureNone.
func Kind(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrLengthMismatch):
		return FailureLengthMismatch
	case errors.Is(err, ErrMissingAnchorWord):
		return FailureMissingAnchorWord
	case errors.Is(err, ErrNoPathFound):
		return FailureNoPathFound
	default:
		return FailureOther
	}
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Search.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks for a single Search.
type SearchOptions struct {
	// Ctx is checked once per selection round.
	Ctx context.Context

	// OnSelect is called when a vertex is finalized, with its index and score.
	OnSelect func(index, score int)

	// OnRelax is called whenever a vertex receives a better score.
	OnRelax func(from, to, score int)

	// MaxDepth, if > 0, prevents scores above MaxDepth from being assigned.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SearchOptions with a background context,
// no-op hooks and no depth limit.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		OnSelect: func(int, int) {},
		OnRelax:  func(int, int, int) {},
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSelect registers a callback run for every finalized vertex.
func WithOnSelect(fn func(index, score int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithOnRelax registers a callback run for every score improvement.
func WithOnRelax(fn func(from, to, score int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxDepth limits the ladder length in edges.
//
//	d > 0: no vertex is scored above d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *SearchOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// SearchResult holds the per-vertex state left by Search.
//
//   - Score[i]:   edges from the begin anchor, or Unreached.
//   - Prev[i]:    predecessor on the best path found, or NoVertex.
//   - Visited[i]: true once vertex i was selected and relaxed from.
//   - Rounds:     number of selections performed.
type SearchResult struct {
	Score   []int
	Prev    []int
	Visited []bool
	Rounds  int
}

// Reached reports whether vertex i received a finite score.
func (r *SearchResult) Reached(i int) bool {
	return i >= 0 && i < len(r.Score) && r.Score[i] != Unreached
}
