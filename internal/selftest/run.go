package selftest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Options configures Run.
type Options struct {
	Color bool
	Quiet bool // print failures only
}

// Summary counts the outcome of a run.
type Summary struct {
	Passed int
	Failed int
}

// OK reports whether every check passed.
func (s Summary) OK() bool { return s.Failed == 0 }

// Run executes checks and writes one aligned line per check.
func Run(w io.Writer, checks []Check, opts Options) Summary {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if !opts.Color {
		pass.DisableColor()
		fail.DisableColor()
	}

	width := 0
	for _, c := range checks {
		width = max(width, runewidth.StringWidth(c.Name))
	}

	var sum Summary
	for _, c := range checks {
		err := c.Run()
		name := runewidth.FillRight(c.Name, width)
		if err == nil {
			sum.Passed++
			if !opts.Quiet {
				fmt.Fprintf(w, "%s  %s\n", name, pass.Sprint("PASS"))
			}
			continue
		}
		sum.Failed++
		fmt.Fprintf(w, "%s  %s  %v\n", name, fail.Sprint("FAIL"), err)
	}
	fmt.Fprintf(w, "%d passed, %d failed\n", sum.Passed, sum.Failed)
	return sum
}
