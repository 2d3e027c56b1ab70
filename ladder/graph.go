package ladder

import "fmt"

// Graph is the immutable word graph for one query: the retained words in
// insertion order, the dense neighbor matrix and the anchor indices.
// A Graph is only obtained from Builder.Build or Build and is safe for
// concurrent reads.
type Graph struct {
	words   []string
	adj     *adjacency
	begin   int
	end     int
	dropped int
}

// Builder accumulates candidate words for a Graph. It is not safe for concurrent use.
type Builder struct {
	beginWord string
	endWord   string
	words     []string
	begin     int
	end       int
	dropped   int
	err       error
}

// NewBuilder returns a Builder for the given anchors. If the anchors differ in
// length the error is recorded and returned by Build; Push becomes a no-op.
func NewBuilder(begin, end string) *Builder {
	b := &Builder{beginWord: begin, endWord: end, begin: NoVertex, end: NoVertex}
	if len(begin) != len(end) {
		b.err = fmt.Errorf("%w: begin %q (%d) vs end %q (%d)",
			ErrLengthMismatch, begin, len(begin), end, len(end))
	}

	return b
}

// Push adds word as the next vertex and reports whether it was retained.
// Words whose length differs from the anchors are dropped silently.
// The first retained copy of an anchor word becomes that anchor's vertex.
func (b *Builder) Push(word string) bool {
	if b.err != nil {
		return false
	}
	if len(word) != len(b.beginWord) {
		b.dropped++
		return false
	}
	idx := len(b.words)
	b.words = append(b.words, word)
	if b.begin == NoVertex && word == b.beginWord {
		b.begin = idx
	}
	if b.end == NoVertex && word == b.endWord {
		b.end = idx
	}

	return true
}

// Build validates the anchors and computes the neighbor matrix.
// Returns ErrLengthMismatch or ErrMissingAnchorWord on failure.
// The Builder must not be used after Build.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	switch {
	case b.begin == NoVertex && b.end == NoVertex:
		return nil, fmt.Errorf("%w: neither %q nor %q", ErrMissingAnchorWord, b.beginWord, b.endWord)
	case b.begin == NoVertex:
		return nil, fmt.Errorf("%w: begin %q", ErrMissingAnchorWord, b.beginWord)
	case b.end == NoVertex:
		return nil, fmt.Errorf("%w: end %q", ErrMissingAnchorWord, b.endWord)
	}

	g := &Graph{
		words:   b.words,
		adj:     newAdjacency(len(b.words)),
		begin:   b.begin,
		end:     b.end,
		dropped: b.dropped,
	}
	g.connect()
	b.words = nil

	return g, nil
}

// Build creates a Graph from candidates in order. See Builder for the rules.
func Build(candidates []string, begin, end string) (*Graph, error) {
	b := NewBuilder(begin, end)
	for _, w := range candidates {
		b.Push(w)
	}

	return b.Build()
}

// connect evaluates every unordered pair once and stores it symmetrically.
// The diagonal stays false.
func (g *Graph) connect() {
	n := len(g.words)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if neighbors(g.words[i], g.words[j]) {
				g.adj.link(i, j, true)
			}
		}
	}
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.words) }

// Begin returns the begin anchor's vertex index.
func (g *Graph) Begin() int { return g.begin }

// End returns the end anchor's vertex index.
func (g *Graph) End() int { return g.end }

// Dropped returns how many candidates were discarded for having the wrong length.
func (g *Graph) Dropped() int { return g.dropped }

// Word returns the word at vertex i, or "" and false if i is out of range.
func (g *Graph) Word(i int) (string, bool) {
	if i < 0 || i >= len(g.words) {
		return "", false
	}

	return g.words[i], true
}

// Words returns a copy of the vertex words in index order.
func (g *Graph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// Adjacent reports whether vertices i and j are neighbors.
// Out-of-range indices are never adjacent.
func (g *Graph) Adjacent(i, j int) bool {
	n := len(g.words)
	if i < 0 || j < 0 || i >= n || j >= n {
		return false
	}

	return g.adj.has(i, j)
}

// Neighbors returns the neighbor indices of vertex i in increasing order.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= len(g.words) {
		return nil
	}
	out := make([]int, 0, g.adj.degree(i))
	for j := 0; j < len(g.words); j++ {
		if g.adj.has(i, j) {
			out = append(out, j)
		}
	}

	return out
}

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	total := 0
	for i := 0; i < len(g.words); i++ {
		total += g.adj.degree(i)
	}

	return total / 2
}
