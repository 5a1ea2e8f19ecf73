package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // только Error()
	LevelPhase        // driver and pass spans
	LevelDetail       // plus one span per file
	LevelDebug        // plus lexeme-level points
)

var levelNames = []string{"off", "error", "phase", "detail", "debug"}

// finest is the deepest scope each level lets through; zero means none.
var finest = [...]Scope{
	LevelPhase:  ScopePass,
	LevelDetail: ScopeFile,
	LevelDebug:  ScopeLexeme,
}

func (l Level) String() string { return nameOf(levelNames, l) }

func ParseLevel(s string) (Level, error) { return parseName[Level]("trace level", levelNames, s) }

// ShouldEmit reports whether spans and points of scope pass at level l.
func (l Level) ShouldEmit(scope Scope) bool {
	return int(l) < len(finest) && scope != 0 && scope <= finest[l]
}

func nameOf[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

func parseName[T ~uint8](what string, names []string, s string) (T, error) {
	i := slices.Index(names, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, fmt.Errorf("invalid %s: %q (expected: %s)", what, s, strings.Join(names, "|"))
	}
	return T(i), nil // #nosec G115 -- names are short tables
}
