// Package server exposes ladder queries over HTTP against a dictionary
// loaded at startup and reloaded when its file changes.
//
// Routes:
//
//	GET /ladder?begin=TON&end=KOT   JSON render.Outcome
//	GET /healthz                    "ok"
//	GET /metrics                    Prometheus exposition
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordpath/internal/solver"
	"github.com/katalvlaran/wordpath/ladder"
)

// RequestIDHeader carries the per-request id in responses.
const RequestIDHeader = "X-Request-Id"

// Server wires the HTTP routes to a Solver and a Dictionary.
type Server struct {
	dict   *Dictionary
	solver *solver.Solver
	logger logrus.FieldLogger
	mux    *http.ServeMux
}

// New creates a Server.
func New(dict *Dictionary, s *solver.Solver, logger logrus.FieldLogger) *Server {
	srv := &Server{dict: dict, solver: s, logger: logger, mux: http.NewServeMux()}
	srv.mux.HandleFunc("/ladder", srv.handleLadder)
	srv.mux.HandleFunc("/healthz", srv.handleHealth)
	srv.mux.Handle("/metrics", promhttp.Handler())

	return srv
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	s.logger.WithField("addr", addr).Info("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	w.Header().Set(RequestIDHeader, reqID)
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	q := r.URL.Query()
	begin, end := q.Get("begin"), q.Get("end")
	if begin == "" || end == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "begin and end are required"})
		return
	}

	out, err := s.solver.Solve(r.Context(), s.dict.Words(), begin, end)
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.WithFields(logrus.Fields{"request_id": reqID}).WithError(err).Error("ladder request failed")
	}
	writeJSON(w, status, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// statusFor maps query failures onto HTTP status codes.
func statusFor(err error) int {
	switch ladder.Kind(err) {
	case ladder.FailureNone:
		return http.StatusOK
	case ladder.FailureLengthMismatch:
		return http.StatusUnprocessableEntity
	case ladder.FailureMissingAnchorWord, ladder.FailureNoPathFound:
		return http.StatusNotFound
	}
	switch {
	case errors.Is(err, solver.ErrTooManyWords):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return 499
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
