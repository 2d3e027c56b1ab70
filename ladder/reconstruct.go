package ladder

import "fmt"

// Reconstruct walks res.Prev from g.End() back to g.Begin() and returns the
// words along the way, destination first and source last.
//
// If both anchors are the same vertex the result is that single word.
// Returns ErrNoPathFound when the end anchor was never reached,
// ErrResultMismatch when res was sized for another graph, and
// ErrCorruptPredecessors when the links leave the graph or cycle.
func Reconstruct(g *Graph, res *SearchResult) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Len()
	if res == nil || len(res.Prev) != n {
		return nil, ErrResultMismatch
	}
	if g.begin == g.end {
		return []string{g.words[g.end]}, nil
	}
	if res.Prev[g.end] == NoVertex {
		return nil, fmt.Errorf("%w: from %q to %q", ErrNoPathFound, g.words[g.begin], g.words[g.end])
	}

	path := make([]string, 0, pathCap(res, g.end, n))
	cur := g.end
	for steps := 0; ; steps++ {
		if steps >= n {
			return nil, fmt.Errorf("%w: no begin word after %d steps", ErrCorruptPredecessors, steps)
		}
		path = append(path, g.words[cur])
		if cur == g.begin {
			return path, nil
		}
		cur = res.Prev[cur]
		if cur < 0 || cur >= n {
			return nil, fmt.Errorf("%w: link to vertex %d", ErrCorruptPredecessors, cur)
		}
	}
}

// pathCap sizes the result from the end anchor's score when it is plausible.
func pathCap(res *SearchResult, end, n int) int {
	if len(res.Score) == n && res.Score[end] < n {
		return res.Score[end] + 1
	}

	return 0
}
