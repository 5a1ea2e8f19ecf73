package dialect

import (
	"fmt"
	"strings"
)

// Kind is the source dialect of a lexical session. It is fixed when the
// session starts and never changes mid-session.
type Kind uint8

const (
	C Kind = iota
	Interface
	Component
	Implementation
	// Any re-lexes text that was already validated in some other dialect.
	Any

	kindCount
)

func (k Kind) String() string {
	switch k {
	case C:
		return "c"
	case Interface:
		return "interface"
	case Component:
		return "component"
	case Implementation:
		return "implementation"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Valid reports whether k is one of the five dialects.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Parse converts a dialect name into a Kind.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return C, nil
	case "interface":
		return Interface, nil
	case "component":
		return Component, nil
	case "implementation":
		return Implementation, nil
	case "any":
		return Any, nil
	default:
		return C, fmt.Errorf("invalid dialect %q (expected: c|interface|component|implementation|any)", s)
	}
}

// All returns every dialect in declaration order.
func All() []Kind {
	return []Kind{C, Interface, Component, Implementation, Any}
}

// Set is a bitset of dialects.
type Set uint8

// Of builds a Set from kinds.
func Of(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Every contains all five dialects.
const Every Set = 1<<kindCount - 1

// Has reports whether k is in s.
func (s Set) Has(k Kind) bool {
	return k < kindCount && s&(1<<k) != 0
}

func (s Set) String() string {
	if s == Every {
		return "all"
	}
	parts := make([]string, 0, kindCount)
	for _, k := range All() {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	return strings.Join(parts, "|")
}
