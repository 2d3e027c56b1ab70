// Command wordpath finds the shortest word ladder between two words.
//
//	wordpath solve words.txt dict.txt      print the ladder, end word first
//	wordpath selftest                      run the built-in reference cases
//	wordpath serve --dictionary dict.txt   answer GET /ladder over HTTP
//
// Settings come from WORDPATH_* environment variables (optionally seeded from
// a .env file) and can be overridden by flags.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes. 2 and 3 follow the ladder failure kinds.
const (
	ExitSuccess       = 0
	ExitError         = 1
	ExitMissingAnchor = 2
	ExitNoPath        = 3
)

// exitError carries a specific exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)

	return ExitError
}
