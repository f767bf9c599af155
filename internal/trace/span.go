package trace

import (
	"sync/atomic"
	"time"
)

var lastSpanID atomic.Uint64

// Span is an open begin event waiting for its End. A Span from a tracer that
// filters its scope is inert and has ID 0.
type Span struct {
	tracer Tracer
	begin  Event
	extra  map[string]string
}

// Begin emits a begin event and returns the span to close with End.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !records(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer: t,
		begin: Event{
			Time:     time.Now(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   lastSpanID.Add(1),
			ParentID: parent,
			Name:     name,
		},
	}
	ev := s.begin
	t.Emit(&ev)
	return s
}

// WithExtra attaches a key/value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// End emits the end event with the elapsed time under "dur" and returns it.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	dur := time.Since(s.begin.Time)
	s.WithExtra("dur", dur.String())
	ev := s.begin
	ev.Time = time.Now()
	ev.Kind = KindSpanEnd
	ev.Detail = detail
	ev.Extra = s.extra
	s.tracer.Emit(&ev)
	return dur
}

// ID is the span's identifier, or 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.begin.SpanID
}

// Point emits a standalone event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !records(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
