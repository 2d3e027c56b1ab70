package ladder

// searcher holds the mutable state of one Search.
type searcher struct {
	g    *Graph
	opts SearchOptions
	res  *SearchResult
}

// Search computes scores and predecessors from g.Begin() with unit edge weights.
//
// Each round scans all vertices in increasing index order and selects the
// unvisited vertex with the smallest finite score, the lowest index winning
// ties. Only that vertex is marked visited. Its neighbors are then relaxed to
// score+1; a relaxation pass stops as soon as it scores g.End().
// The search ends once g.End() is selected or no unvisited vertex has a
// finite score.
//
// Unreachability is not an error here: it shows as Prev[g.End()] == NoVertex.
// Returns ErrGraphNil, ErrOptionViolation or the context's error.
func Search(g *Graph, opts ...Option) (*SearchResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	res := &SearchResult{
		Score:   make([]int, n),
		Prev:    make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Score[i] = Unreached
		res.Prev[i] = NoVertex
	}
	res.Score[g.begin] = 0

	s := &searcher{g: g, opts: o, res: res}
	if err := s.loop(); err != nil {
		return nil, err
	}

	return res, nil
}

// loop alternates selection and relaxation until termination or cancellation.
func (s *searcher) loop() error {
	for {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		u := s.selectNext()
		if u == NoVertex {
			return nil
		}
		s.res.Rounds++
		s.opts.OnSelect(u, s.res.Score[u])
		if u == s.g.end {
			return nil
		}
		s.relax(u)
	}
}

// selectNext returns the lowest-index unvisited vertex with the minimum finite
// score and marks it visited, or NoVertex when none is left.
func (s *searcher) selectNext() int {
	best, sel := Unreached, NoVertex
	for i, score := range s.res.Score {
		if s.res.Visited[i] || score >= best {
			continue
		}
		best, sel = score, i
	}
	if sel != NoVertex {
		s.res.Visited[sel] = true
	}

	return sel
}

// relax offers score(u)+1 to every neighbor of u with a worse score.
func (s *searcher) relax(u int) {
	next := s.res.Score[u] + 1
	if s.opts.MaxDepth > 0 && next > s.opts.MaxDepth {
		return
	}
	for j := 0; j < s.g.Len(); j++ {
		if s.res.Score[j] <= next || !s.g.adj.has(u, j) {
			continue
		}
		s.res.Score[j] = next
		s.res.Prev[j] = u
		s.opts.OnRelax(u, j, next)
		if j == s.g.end {
			// no later vertex in this pass can give end a better score
			break
		}
	}
}
