// Package wordpath finds the shortest word ladder between two equal-length
// words through a dictionary: each step changes exactly one letter and every
// intermediate word must be in the dictionary.
//
// Packages:
//
//	ladder/           — neighbor test, dense word graph, scan-based search and path reconstruction
//	wordio/           — reading the anchors file and the dictionary file
//	internal/config   — WORDPATH_* environment settings and .env loading
//	internal/logging  — logrus logger construction
//	internal/metrics  — Prometheus collectors
//	internal/render   — text, JSON and YAML output
//	internal/solver   — one query with limits, logging and metrics
//	internal/server   — HTTP /ladder endpoint and dictionary hot reload
//	cmd/wordpath      — the solve, selftest and serve commands
//
// Quick example:
//
//	path, err := ladder.BuildAndSearch([]string{"KOT", "TOT", "TON"}, "TON", "KOT")
//	// path == [KOT TOT TON], end word first
package wordpath
