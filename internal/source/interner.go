package source

import (
	"sort"
	"sync"
)

// Interner keeps one copy of every file name seen by lexer sessions, so
// that Locations share the string instead of owning it. It is safe for
// concurrent use and may be shared by parallel sessions.
type Interner struct {
	mu    sync.Mutex
	names map[string]string
}

func NewInterner() *Interner {
	return &Interner{names: make(map[string]string)}
}

// Name returns the shared copy of s, storing s on first sight.
func (i *Interner) Name(s string) string {
	if s == "" {
		return ""
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if name, ok := i.names[s]; ok {
		return name
	}
	// своя копия, чтобы не держать чужой буфер
	name := string([]byte(s))
	i.names[name] = name
	return name
}

// Len is the number of distinct names.
func (i *Interner) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.names)
}

// Names returns the interned names in sorted order.
func (i *Interner) Names() []string {
	i.mu.Lock()
	out := make([]string, 0, len(i.names))
	for name := range i.names {
		out = append(out, name)
	}
	i.mu.Unlock()
	sort.Strings(out)
	return out
}
