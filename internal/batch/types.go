package batch

import "time"

// Stage describes where a file is in the batch pipeline.
type Stage string

const (
	// StageRead loads the file from disk.
	StageRead Stage = "read"
	// StageEval evaluates the file's expressions.
	StageEval Stage = "eval"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	// StatusCached marks a file answered from the disk cache.
	StatusCached Status = "cached"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Must be goroutine-safe.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel. Once Done is closed, events
// that cannot be delivered are dropped instead of blocking the sender.
type ChannelSink struct {
	Ch   chan<- Event
	Done <-chan struct{}
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	select {
	case s.Ch <- evt:
	case <-s.Done:
	}
}

// LineResult is the outcome of one expression line.
type LineResult struct {
	Line   int    // 1-based line number
	Expr   string // expression text as written
	Output string // rendered result; empty when Err is set
	Err    string // error message; empty on success
}

// FileResult collects the line results of one input file.
type FileResult struct {
	Path   string
	Lines  []LineResult
	Cached bool
	Err    error // file-level failure (unreadable file)
}

// Failed reports whether the file or any of its lines failed.
func (r FileResult) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, l := range r.Lines {
		if l.Err != "" {
			return true
		}
	}
	return false
}
