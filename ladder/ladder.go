package ladder

import "context"

// BuildAndSearch returns the shortest ladder from begin to end through
// candidates, ordered end first and begin last.
//
// Failures are ErrLengthMismatch, ErrMissingAnchorWord and ErrNoPathFound
// (possibly wrapped); use errors.Is or Kind to tell them apart.
func BuildAndSearch(candidates []string, begin, end string) ([]string, error) {
	return BuildAndSearchContext(context.Background(), candidates, begin, end)
}

// BuildAndSearchContext is BuildAndSearch with cancellation between search rounds.
func BuildAndSearchContext(ctx context.Context, candidates []string, begin, end string, opts ...Option) ([]string, error) {
	g, err := Build(candidates, begin, end)
	if err != nil {
		return nil, err
	}
	res, err := Search(g, append([]Option{WithContext(ctx)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(g, res)
}
