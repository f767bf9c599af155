package trace

import (
	"fmt"
	"strings"
)

// Level controls how much is traced.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // failures only
	LevelPhase        // command boundaries
	LevelDetail       // plus one span per batch file
	LevelDebug        // plus one span per expression
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel reads a level name; the empty string means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil //nolint:gosec // G115: index of a five-element array.
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope are recorded at level l.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopeCommand
	case LevelDetail:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	}
	return false
}
