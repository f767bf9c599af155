package trace

import "time"

// Kind says whether an event opens a span, closes it, or stands alone.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. Smaller values are coarser.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1 // one CLI command
	ScopeFile                     // one batch input file
	ScopeExpr                     // one evaluated expression
)

var scopeNames = [...]string{ScopeCommand: "command", ScopeFile: "file", ScopeExpr: "expr"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Seq is assigned by the tracer that writes it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for root spans
	Name     string
	Detail   string
	Extra    map[string]string
}
