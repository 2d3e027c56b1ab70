package ladder

// adjacency is a square n×n boolean matrix in row-major order.
// The builder keeps it symmetric with a false diagonal.
type adjacency struct {
	n    int    // number of vertices (rows == cols)
	data []bool // flat backing storage, length == n*n
}

// newAdjacency allocates an n×n matrix with no edges.
// Complexity: O(n²) time and memory.
func newAdjacency(n int) *adjacency {
	return &adjacency{n: n, data: make([]bool, n*n)}
}

// has reports whether the edge (i, j) is present. Indices are trusted.
func (a *adjacency) has(i, j int) bool {
	return a.data[i*a.n+j]
}

// link stores v at (i, j) and (j, i).
func (a *adjacency) link(i, j int, v bool) {
	a.data[i*a.n+j] = v
	a.data[j*a.n+i] = v
}

// degree counts the neighbors of i.
func (a *adjacency) degree(i int) int {
	d := 0
	row := a.data[i*a.n : (i+1)*a.n]
	for _, v := range row {
		if v {
			d++
		}
	}

	return d
}
