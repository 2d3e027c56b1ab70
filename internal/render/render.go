// Package render writes ladder outcomes as plain text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordpath/ladder"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the output encoding.
type Format int

const (
	// Text prints one word per line, end word first.
	Text Format = iota
	// JSON prints the Outcome as an indented JSON object.
	JSON
	// YAML prints the Outcome as a YAML document.
	YAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat maps "text", "json" or "yaml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Outcome is the printable result of one query.
type Outcome struct {
	Begin   string   `json:"begin" yaml:"begin"`
	End     string   `json:"end" yaml:"end"`
	Path    []string `json:"path" yaml:"path"`
	Steps   int      `json:"steps" yaml:"steps"`
	Failure string   `json:"failure,omitempty" yaml:"failure,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewOutcome builds an Outcome from a BuildAndSearch result.
func NewOutcome(begin, end string, path []string, err error) Outcome {
	out := Outcome{Begin: begin, End: end, Path: path}
	if path == nil {
		out.Path = []string{}
	}
	if len(path) > 0 {
		out.Steps = len(path) - 1
	}
	if err != nil {
		out.Failure = ladder.Kind(err).String()
		out.Error = err.Error()
	}

	return out
}

// Write encodes out to w in format f.
func Write(w io.Writer, f Format, out Outcome) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, out)
	}
}

// writeText prints the ladder or a one-line failure notice.
func writeText(w io.Writer, out Outcome) error {
	if out.Failure != "" {
		_, err := fmt.Fprintln(w, failureLine(out))
		return err
	}
	for _, word := range out.Path {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}

	return nil
}

func failureLine(out Outcome) string {
	switch out.Failure {
	case ladder.FailureLengthMismatch.String():
		return "-- No connection (words are of different length)"
	case ladder.FailureMissingAnchorWord.String():
		return "-- No connection (the dictionary is missing the first or the last word)"
	case ladder.FailureNoPathFound.String():
		return "-- No connection (no path found)"
	default:
		return "-- ERROR: " + out.Error
	}
}
