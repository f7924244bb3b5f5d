package testutils

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// Check builds a TestCase for input, passing when actual equals expected.
func Check(name, input, expected, actual string) TestCase {
	return TestCase{
		Name:     name,
		Input:    input,
		Expected: expected,
		Actual:   actual,
		Pass:     expected == actual,
	}
}

// PrintTestTable prints a formatted table of comparison results.
// It fails the test if any case has Pass=false.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)

	const (
		Reset = "\033[0m"
		Red   = "\033[31m"
		Green = "\033[32m"
	)

	fmt.Fprintf(w, "  Name\tInput\tExpected Value\tReturned Value\t\n")

	var failed []string
	for _, tc := range cases {
		nameColor := Reset
		actualColor := Green
		leftPtr := " "
		rightPtr := " "

		if !tc.Pass {
			failed = append(failed, tc.Name)
			nameColor = Red
			actualColor = Red
			leftPtr = Red + ">" + Reset
			rightPtr = Red + "<" + Reset
		}

		fmt.Fprintf(w, "%s %s%s%s\t%q\t%q\t%s%q%s\t%s\n",
			leftPtr,
			nameColor, tc.Name, Reset,
			tc.Input,
			tc.Expected,
			actualColor, tc.Actual, Reset,
			rightPtr,
		)
	}

	w.Flush()
	fmt.Fprintln(os.Stdout, sb.String())

	if len(failed) > 0 {
		t.Errorf("%d case(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
}
