package main

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/ladder"
)

// neighborCase is one AreNeighbors reference check.
type neighborCase struct {
	a, b string
	want bool
	err  bool
}

var neighborCases = []neighborCase{
	{a: "ABC", b: "ABB", want: true},
	{a: "ABCD", b: "AZCD", want: true},
	{a: "AAA", b: "AAA", want: false},
	{a: "AAA", b: "AAAB", err: true},
	{a: "ACAA", b: "AAAB", want: false},
}

// ladderCase is one reference query; a nil want means no ladder exists.
type ladderCase struct {
	dict       []string
	begin, end string
	want       []string
}

var ladderCases = []ladderCase{
	{[]string{"XYZ", "XYX", "ZYX", "ZYY", "ZXY"}, "ZXY", "XYZ", []string{"XYZ", "XYX", "ZYX", "ZYY", "ZXY"}},
	{[]string{"KOT", "TOT", "TON"}, "TON", "KOT", []string{"KOT", "TOT", "TON"}},
	{[]string{"CAT", "COT", "DOG", "DIG"}, "CAT", "DOG", nil},
	{[]string{"ABA", "BBA", "BBB", "BAB"}, "BAB", "ABA", []string{"ABA", "BBA", "BBB", "BAB"}},
	{[]string{"ABA", "ABB", "ACB", "ACC", "CCC"}, "CCC", "ABA", []string{"ABA", "ABB", "ACB", "ACC", "CCC"}},
}

func newSelftestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in reference cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runSelftest(); err != nil {
				a.logger.WithError(err).Error("self test failed")
				return &exitError{code: ExitError, err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d neighbour checks, %d ladders\n", len(neighborCases), len(ladderCases))
			return nil
		},
	}
}

// runSelftest returns the first failing case.
func runSelftest() error {
	for _, c := range neighborCases {
		got, err := ladder.AreNeighbors(c.a, c.b)
		if (err != nil) != c.err || got != c.want {
			return fmt.Errorf("neighbours %q %q: got %v (err %v), want %v", c.a, c.b, got, err, c.want)
		}
	}
	for i, c := range ladderCases {
		got, err := ladder.BuildAndSearch(c.dict, c.begin, c.end)
		if c.want == nil {
			if ladder.Kind(err) != ladder.FailureNoPathFound {
				return fmt.Errorf("test case %d: want no ladder, got %v (err %v)", i+1, got, err)
			}
			continue
		}
		if err != nil || !reflect.DeepEqual(got, c.want) {
			return fmt.Errorf("test case %d: got %v (err %v), want %v", i+1, got, err, c.want)
		}
	}

	return nil
}
