// Package ladder finds the shortest word ladder between two equal-length words,
// using a dictionary of candidate words as the allowed intermediate steps.
//
// What
//
//   - Two words are neighbors iff they have the same length and differ in exactly
//     one byte position (AreNeighbors).
//   - Build turns an ordered candidate list into a Graph: candidates whose length
//     differs from the anchors are dropped, every retained candidate becomes a
//     vertex at the next index (duplicates included), and a dense symmetric
//     adjacency matrix is computed once over all vertex pairs.
//   - Search runs a uniform-cost relaxation from the begin anchor, selecting the
//     next vertex by a linear minimum scan instead of a heap.
//   - Reconstruct walks predecessor links from the end anchor back to the begin
//     anchor and returns the ladder destination-first.
//   - BuildAndSearch chains the three steps.
//
// Why
//
//   - The dictionaries this is meant for are small: the O(N²) matrix and scan
//     are simpler than a heap and give O(1) neighbor lookups.
//   - Vertices are indices into a flat word slice and edges are cells of a flat
//     bool matrix, so there are no pointer-linked nodes to own or free.
//
// Determinism
//
//	The selection scan runs in increasing index order and only replaces its
//	candidate on a strictly smaller score, so the lowest index with the minimum
//	score is selected. Relaxation also runs in increasing index order. Identical
//	inputs always produce the identical ladder.
//
// Complexity (N = retained vertices, L = word length)
//
//   - Build:       O(N²·L) time, O(N²) memory
//   - Search:      O(N²) time, O(N) memory
//   - Reconstruct: O(N)
//
// Usage
//
//	path, err := ladder.BuildAndSearch(dict, "ZXY", "XYZ")
//	switch {
//	case errors.Is(err, ladder.ErrLengthMismatch):
//	case errors.Is(err, ladder.ErrMissingAnchorWord):
//	case errors.Is(err, ladder.ErrNoPathFound):
//	}
//	// path == [XYZ XYX ZYX ZYY ZXY]
//
// Errors
//
//   - ErrLengthMismatch      if the anchors (or AreNeighbors arguments) differ in length.
//   - ErrMissingAnchorWord   if an anchor has no vertex after length filtering.
//   - ErrNoPathFound         if the anchors are in different components.
//   - ErrGraphNil            if a nil Graph is passed to Search or Reconstruct.
//   - ErrOptionViolation     if an invalid Option is supplied.
//   - ErrResultMismatch      if a SearchResult does not belong to the Graph.
//   - ErrCorruptPredecessors if predecessor links do not lead back to the begin anchor.
package ladder
