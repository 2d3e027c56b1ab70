package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordpath/ladder"
	"github.com/katalvlaran/wordpath/internal/render"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{"": render.Text, "TEXT": render.Text, "json": render.JSON, "yml": render.YAML} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := render.ParseFormat("csv")
	require.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.Equal(t, "yaml", render.YAML.String())
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	out := render.NewOutcome("TON", "KOT", []string{"KOT", "TOT", "TON"}, nil)
	require.NoError(t, render.Write(&buf, render.Text, out))
	assert.Equal(t, "KOT\nTOT\nTON\n", buf.String())
	assert.Equal(t, 2, out.Steps)
}

func TestWrite_TextFailures(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ladder.ErrLengthMismatch, "-- No connection (words are of different length)\n"},
		{ladder.ErrMissingAnchorWord, "-- No connection (the dictionary is missing the first or the last word)\n"},
		{ladder.ErrNoPathFound, "-- No connection (no path found)\n"},
		{errors.New("boom"), "-- ERROR: boom\n"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		require.NoError(t, render.Write(&buf, render.Text, render.NewOutcome("A", "B", nil, tc.err)))
		assert.Equal(t, tc.want, buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := render.NewOutcome("AAA", "CCC", nil, ladder.ErrNoPathFound)
	require.NoError(t, render.Write(&buf, render.JSON, out))
	assert.JSONEq(t, `{"begin":"AAA","end":"CCC","path":[],"steps":0,
		"failure":"no_path_found","error":"ladder: no path found"}`, buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	out := render.NewOutcome("TON", "KOT", []string{"KOT", "TOT", "TON"}, nil)
	require.NoError(t, render.Write(&buf, render.YAML, out))

	var back render.Outcome
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, out, back)
	assert.NotContains(t, buf.String(), "failure")
}
