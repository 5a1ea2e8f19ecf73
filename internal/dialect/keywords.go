package dialect

type keywordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

// Сигналы берутся только из заголовка файла (до первой '{').
var keywordSignals = map[string][]keywordSignal{
	"interface":      {{Dialect: Interface, Score: 6, Reason: "interface declaration"}},
	"module":         {{Dialect: Component, Score: 6, Reason: "module declaration"}},
	"configuration":  {{Dialect: Component, Score: 6, Reason: "configuration declaration"}},
	"component":      {{Dialect: Component, Score: 5, Reason: "abstract component declaration"}},
	"generic":        {{Dialect: Component, Score: 2, Reason: "generic component"}},
	"implementation": {{Dialect: Implementation, Score: 4, Reason: "bare implementation block"}},
	"includes":       {{Dialect: Component, Score: 1, Reason: "legacy includes clause"}},

	"typedef": {{Dialect: C, Score: 2, Reason: "C typedef"}},
	"struct":  {{Dialect: C, Score: 1, Reason: "C struct"}},
	"enum":    {{Dialect: C, Score: 1, Reason: "C enum"}},
	"extern":  {{Dialect: C, Score: 1, Reason: "C extern declaration"}},
	"static":  {{Dialect: C, Score: 1, Reason: "C static declaration"}},
}

// RecordIdent collects keyword evidence for an identifier at byte offset off.
func RecordIdent(e *Evidence, ident string, off int) {
	if e == nil || ident == "" {
		return
	}
	for _, sig := range keywordSignals[ident] {
		e.Add(Hint{
			Dialect: sig.Dialect,
			Score:   sig.Score,
			Reason:  sig.Reason,
			Offset:  off,
		})
	}
}
