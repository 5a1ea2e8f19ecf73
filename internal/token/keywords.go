package token

import (
	"sort"
	"sync"

	"nesclex/internal/dialect"
)

// KeywordEntry is one row of the static keyword table.
type KeywordEntry struct {
	Spelling string
	RID      RID
	Enabled  dialect.Set
}

// componentOnly are the dialects where component-language keywords are live.
var componentOnly = dialect.Of(dialect.Component, dialect.Implementation, dialect.Any)

// keywordList is closed: it is not user-extensible.
var keywordList = []KeywordEntry{
	{"int", RIDInt, dialect.Every},
	{"char", RIDChar, dialect.Every},
	{"float", RIDFloat, dialect.Every},
	{"double", RIDDouble, dialect.Every},
	{"void", RIDVoid, dialect.Every},
	{"unsigned", RIDUnsigned, dialect.Every},
	{"short", RIDShort, dialect.Every},
	{"long", RIDLong, dialect.Every},
	{"signed", RIDSigned, dialect.Every},
	{"__signed", RIDSigned, dialect.Every},
	{"__signed__", RIDSigned, dialect.Every},
	{"inline", RIDInline, dialect.Every},
	{"__inline", RIDInline, dialect.Every},
	{"__inline__", RIDInline, dialect.Every},
	{"__complex", RIDComplex, dialect.Every},
	{"__complex__", RIDComplex, dialect.Every},
	{"auto", RIDAuto, dialect.Every},
	{"static", RIDStatic, dialect.Every},
	{"extern", RIDExtern, dialect.Every},
	{"register", RIDRegister, dialect.Every},
	{"typedef", RIDTypedef, dialect.Every},

	{"default", RIDDefault, componentOnly},
	{"norace", RIDNorace, componentOnly},
	{"command", RIDCommand, componentOnly},
	{"event", RIDEvent, componentOnly},
	{"task", RIDTask, componentOnly},
	{"async", RIDAsync, componentOnly},
}

var (
	tableOnce sync.Once
	table     map[string]KeywordEntry
)

// InitTable builds the spelling table. It is safe to call more than once.
func InitTable() {
	tableOnce.Do(func() {
		table = make(map[string]KeywordEntry, len(keywordList))
		for _, kw := range keywordList {
			table[kw.Spelling] = kw
		}
	})
}

// Resolve returns the reserved-identifier code of spelling under dialect d,
// or RIDUnused when the spelling is not a keyword in that dialect.
func Resolve(spelling string, d dialect.Kind) RID {
	InitTable()
	kw, ok := table[spelling]
	if !ok || !kw.Enabled.Has(d) {
		return RIDUnused
	}
	return kw.RID
}

// Keywords returns a copy of the table sorted by spelling.
func Keywords() []KeywordEntry {
	out := make([]KeywordEntry, len(keywordList))
	copy(out, keywordList)
	sort.Slice(out, func(i, j int) bool { return out[i].Spelling < out[j].Spelling })
	return out
}
