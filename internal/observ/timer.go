// Package observ measures how long each stage of a CLI command takes.
package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase is one measured stage. Dur stays zero until the stage is stopped.
type Phase struct {
	Name string
	Note string
	Dur  time.Duration

	start time.Time
	done  bool
}

// Timer collects phases in the order they were started. It is not safe for
// concurrent use; commands time their stages from one goroutine.
type Timer struct {
	created time.Time
	phases  []*Phase
}

// NewTimer starts the wall clock of a new Timer.
func NewTimer() *Timer { return &Timer{created: time.Now()} }

// Start opens a phase and returns the function that closes it. Calling the
// returned function more than once keeps the first measurement.
func (t *Timer) Start(name string) func(note string) {
	p := &Phase{Name: name, start: time.Now()}
	t.phases = append(t.phases, p)
	return func(note string) {
		if p.done {
			return
		}
		p.done = true
		p.Dur = time.Since(p.start)
		p.Note = note
	}
}

// Report is the serializable view of a Timer.
type Report struct {
	WallMS float64       `json:"wall_ms"`
	Phases []PhaseReport `json:"phases"`
}

// PhaseReport is the serializable view of one phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
	Open       bool    `json:"open,omitempty"`
}

// Report snapshots the timer. Phases that were never stopped are reported
// with their elapsed time so far and Open set.
func (t *Timer) Report() Report {
	now := time.Now()
	r := Report{WallMS: millis(now.Sub(t.created))}
	for _, p := range t.phases {
		pr := PhaseReport{Name: p.Name, Note: p.Note, DurationMS: millis(p.Dur)}
		if !p.done {
			pr.Open = true
			pr.DurationMS = millis(now.Sub(p.start))
		}
		r.Phases = append(r.Phases, pr)
	}
	return r
}

// WriteSummary prints an aligned table of the phases followed by the wall
// clock time since NewTimer.
func (t *Timer) WriteSummary(w io.Writer) error {
	r := t.Report()
	width := len("wall")
	for _, p := range r.Phases {
		width = max(width, len(p.Name))
	}
	if _, err := fmt.Fprintln(w, "timings:"); err != nil {
		return err
	}
	for _, p := range r.Phases {
		line := fmt.Sprintf("  %-*s %9.3f ms", width, p.Name, p.DurationMS)
		switch {
		case p.Open:
			line += "  (unfinished)"
		case p.Note != "":
			line += "  " + p.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-*s %9.3f ms\n", width, "wall", r.WallMS)
	return err
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
