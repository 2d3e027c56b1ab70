package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and the exit code.
func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))

	code := ExitSuccess
	if err := cmd.Execute(); err != nil {
		code = ExitError
		if ee, ok := err.(*exitError); ok {
			code = ee.code
		}
	}
	return stdout.String(), code
}

// writeFiles creates a words file (end, begin) and a dictionary file.
func writeFiles(t *testing.T, end, begin string, dict string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(words, []byte(end+"\r\n"+begin+" \n"), 0o600))
	require.NoError(t, os.WriteFile(dictPath, []byte(dict), 0o600))
	return words, dictPath
}

func TestSolve_Text(t *testing.T) {
	words, dict := writeFiles(t, "XYZ", "ZXY", "XYZ\nXYX\r\nZYX\nZYY\t\nZXY\n")
	out, code := execute(t, "solve", words, dict)
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "XYZ\nXYX\nZYX\nZYY\nZXY\n", out)
}

func TestSolve_JSON(t *testing.T) {
	words, dict := writeFiles(t, "KOT", "TON", "KOT\nTOT\nTON\n")
	out, code := execute(t, "solve", "-o", "json", words, dict)
	assert.Equal(t, ExitSuccess, code)
	assert.JSONEq(t, `{"begin":"TON","end":"KOT","path":["KOT","TOT","TON"],"steps":2}`, out)
}

func TestSolve_ExitCodes(t *testing.T) {
	words, dict := writeFiles(t, "KOTS", "TON", "KOT\nTOT\nTON\n")
	out, code := execute(t, "solve", words, dict)
	assert.Equal(t, ExitMissingAnchor, code)
	assert.Equal(t, "-- No connection (words are of different length)\n", out)

	words, dict = writeFiles(t, "CAT", "TON", "KOT\nTOT\nTON\n")
	_, code = execute(t, "solve", words, dict)
	assert.Equal(t, ExitMissingAnchor, code)

	words, dict = writeFiles(t, "DOG", "TON", "KOT\nTOT\nTON\nDOG\n")
	out, code = execute(t, "solve", words, dict)
	assert.Equal(t, ExitNoPath, code)
	assert.Equal(t, "-- No connection (no path found)\n", out)

	_, code = execute(t, "solve", words, filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, ExitError, code)

	_, code = execute(t, "solve", words)
	assert.Equal(t, ExitError, code)
}

func TestSolve_MaxDepth(t *testing.T) {
	words, dict := writeFiles(t, "KOT", "TON", "KOT\nTOT\nTON\n")
	_, code := execute(t, "solve", "--max-depth", "1", words, dict)
	assert.Equal(t, ExitNoPath, code)
}

func TestSelftest(t *testing.T) {
	require.NoError(t, runSelftest())
	out, code := execute(t, "selftest")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "ok: 5 neighbour checks, 5 ladders")
}

func TestServe_RequiresDictionary(t *testing.T) {
	t.Setenv("WORDPATH_DICTIONARY", "")
	_, code := execute(t, "serve")
	assert.Equal(t, ExitError, code)
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, code := execute(t, "--log-level", "loud", "selftest")
	assert.Equal(t, ExitError, code)
}
