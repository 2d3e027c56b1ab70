package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/internal/render"
	"github.com/katalvlaran/wordpath/internal/solver"
	"github.com/katalvlaran/wordpath/ladder"
	"github.com/katalvlaran/wordpath/wordio"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		output   string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "solve <words-file> <dictionary-file>",
		Short: "Print the shortest ladder between the two words of words-file",
		Long: `Reads the END word from the first line of words-file and the BEGIN word
from the second, then prints the shortest ladder through dictionary-file,
one word per line starting with the END word.

Exit codes: 0 ladder found, 1 usage or I/O error,
2 words of different length or missing from the dictionary, 3 no ladder.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				a.cfg.OutputFormat = output
			}
			format, err := render.ParseFormat(a.cfg.OutputFormat)
			if err != nil {
				return err
			}
			begin, end, err := wordio.LoadAnchors(args[0])
			if err != nil {
				return err
			}
			dict, err := wordio.LoadDictionary(args[1])
			if err != nil {
				return err
			}

			s := &solver.Solver{
				Logger:   a.logger,
				MaxWords: a.cfg.MaxDictionaryWords,
				Timeout:  a.cfg.SearchTimeout,
				MaxDepth: maxDepth,
			}
			out, solveErr := s.Solve(cmd.Context(), dict, begin, end)
			if err := render.Write(cmd.OutOrStdout(), format, out); err != nil {
				return err
			}

			return exitFor(solveErr)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "longest ladder to consider in steps (0 = unlimited)")

	return cmd
}

// exitFor converts a query failure into the matching exit code. The outcome
// has already been printed, so the error itself is not reported again.
func exitFor(err error) error {
	switch ladder.Kind(err) {
	case ladder.FailureNone:
		return nil
	case ladder.FailureLengthMismatch, ladder.FailureMissingAnchorWord:
		return &exitError{code: ExitMissingAnchor, err: err}
	case ladder.FailureNoPathFound:
		return &exitError{code: ExitNoPath, err: err}
	}

	return &exitError{code: ExitError, err: err}
}
