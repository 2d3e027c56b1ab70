// Package solver runs ladder queries for the CLI and the HTTP server,
// adding the dictionary size guard, the search timeout, logging and metrics
// around ladder.BuildAndSearch.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordpath/internal/metrics"
	"github.com/katalvlaran/wordpath/internal/render"
	"github.com/katalvlaran/wordpath/ladder"
)

// ErrTooManyWords is returned when a dictionary exceeds Solver.MaxWords.
var ErrTooManyWords = errors.New("solver: dictionary too large")

// Solver holds per-process settings; it keeps no state between queries.
type Solver struct {
	Logger   logrus.FieldLogger
	MaxWords int           // 0 disables the guard
	Timeout  time.Duration // 0 disables the timeout
	MaxDepth int           // 0 disables the limit
}

// Solve answers one query and returns a printable outcome together with the
// error behind it, if any.
func (s *Solver) Solve(ctx context.Context, dict []string, begin, end string) (render.Outcome, error) {
	log := s.Logger.WithFields(logrus.Fields{"begin": begin, "end": end, "candidates": len(dict)})

	if s.MaxWords > 0 && len(dict) > s.MaxWords {
		err := fmt.Errorf("%w: %d words, limit %d", ErrTooManyWords, len(dict), s.MaxWords)
		metrics.SearchesTotal.WithLabelValues(ladder.FailureOther.String()).Inc()
		log.WithError(err).Warn("query rejected")
		return render.NewOutcome(begin, end, nil, err), err
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	path, err := s.run(ctx, dict, begin, end, log)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	kind := ladder.Kind(err)
	metrics.SearchesTotal.WithLabelValues(kind.String()).Inc()
	switch kind {
	case ladder.FailureNone:
		metrics.LadderSteps.Observe(float64(len(path) - 1))
		log.WithField("steps", len(path)-1).Info("ladder found")
	case ladder.FailureOther:
		log.WithError(err).Error("query failed")
	default:
		log.WithField("failure", kind.String()).Info("no ladder")
	}

	return render.NewOutcome(begin, end, path, err), err
}

// run is BuildAndSearchContext split into its steps so the graph size can be logged.
func (s *Solver) run(ctx context.Context, dict []string, begin, end string, log logrus.FieldLogger) ([]string, error) {
	g, err := ladder.Build(dict, begin, end)
	if err != nil {
		return nil, err
	}
	metrics.GraphVertices.Set(float64(g.Len()))
	log.WithFields(logrus.Fields{
		"vertices": g.Len(),
		"edges":    g.Edges(),
		"dropped":  g.Dropped(),
	}).Debug("graph built")

	opts := []ladder.Option{ladder.WithContext(ctx)}
	if s.MaxDepth > 0 {
		opts = append(opts, ladder.WithMaxDepth(s.MaxDepth))
	}
	res, err := ladder.Search(g, opts...)
	if err != nil {
		return nil, err
	}
	log.WithField("rounds", res.Rounds).Debug("search finished")

	return ladder.Reconstruct(g, res)
}
