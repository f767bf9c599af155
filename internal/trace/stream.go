package trace

import (
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Format is the encoding used by StreamTracer.
type Format uint8

const (
	FormatAuto   Format = iota // decided by New from the output path
	FormatText                 // one human-readable line per event
	FormatNDJSON               // one JSON object per line
)

// StreamTracer writes each event to w as soon as it is emitted.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	seq    uint64
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Level() Level { return t.level }

// Emit writes ev unless its scope is filtered out. Write errors are dropped;
// a broken trace sink must not fail the command.
func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	ev.Seq = t.seq
	var line []byte
	if t.format == FormatNDJSON {
		line = encodeJSON(ev)
	} else {
		line = encodeText(ev)
	}
	_, _ = t.w.Write(line) //nolint:errcheck
}

// Close closes the underlying writer when it is an io.Closer.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func encodeJSON(ev *Event) []byte {
	data, _ := json.Marshal(jsonEvent{ //nolint:errcheck // strings and integers only
		Time:     ev.Time.UTC().Format(time.RFC3339Nano),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Extra:    ev.Extra,
	})
	return append(data, '\n')
}

// encodeText renders
//
//	#seq kind scope name "detail" key=value ...
//
// with extras sorted by key. Child events are indented by two spaces.
func encodeText(ev *Event) []byte {
	var sb strings.Builder
	sb.WriteByte('#')
	sb.WriteString(strconv.FormatUint(ev.Seq, 10))
	sb.WriteByte(' ')
	if ev.ParentID != 0 {
		sb.WriteString("  ")
	}
	sb.WriteString(ev.Kind.String())
	sb.WriteByte(' ')
	sb.WriteString(ev.Scope.String())
	sb.WriteByte(' ')
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(ev.Detail))
	}
	keys := make([]string, 0, len(ev.Extra))
	for k := range ev.Extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(ev.Extra[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
