package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives events. Implementations must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
	Close() error
}

type nopTracer struct{}

func (nopTracer) Emit(*Event)  {}
func (nopTracer) Level() Level { return LevelOff }
func (nopTracer) Close() error { return nil }

// Nop drops every event.
var Nop Tracer = nopTracer{}

// records reports whether t keeps events of scope.
func records(t Tracer, scope Scope) bool {
	return t != nil && t.Level().ShouldEmit(scope)
}

// Config selects the level and destination of a tracer.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // "-" or "" is stderr; a .ndjson suffix selects FormatNDJSON
}

// New returns Nop when tracing is off and a StreamTracer otherwise.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
			format = FormatNDJSON
		}
	}

	var w io.Writer
	switch {
	case cfg.Output != nil:
		w = cfg.Output
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		// Wrapped so Close leaves stderr open.
		w = struct{ io.Writer }{os.Stderr}
	default:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace output: %w", err)
		}
		w = f
	}
	return NewStreamTracer(w, cfg.Level, format), nil
}
