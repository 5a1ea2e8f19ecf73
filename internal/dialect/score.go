package dialect

import (
	"cmp"
	"slices"
)

// Hint is one observation pointing at a dialect.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
	Offset  int
}

// Evidence tallies hints per dialect while a file header is scanned.
type Evidence struct {
	hints  []Hint
	tally  [kindCount]int
	strong [kindCount]int // индекс самой весомой подсказки, -1 если нет
}

func NewEvidence() *Evidence {
	e := &Evidence{hints: make([]Hint, 0, 8)}
	for i := range e.strong {
		e.strong[i] = -1
	}
	return e
}

// Add records h. Hints with no weight or an unknown dialect are kept for
// reporting but do not score.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
	if h.Score <= 0 || !h.Dialect.Valid() {
		return
	}
	e.tally[h.Dialect] += h.Score
	if s := e.strong[h.Dialect]; s < 0 || e.hints[s].Score < h.Score {
		e.strong[h.Dialect] = len(e.hints) - 1
	}
}

func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// Classification is the verdict for one file.
type Classification struct {
	Kind          Kind
	Score         int
	TotalScore    int
	Confidence    float64 // Score / TotalScore
	RunnerUp      Kind
	RunnerUpScore int
	// ObservedSignals counts every hint, scoring or not.
	ObservedSignals int
	// Reason is the strongest hint for Kind; empty when not Conclusive.
	Reason string
	// Conclusive is false when nothing scored; Kind is then the fallback.
	Conclusive bool
}

// Classifier picks the dialect with the highest tally. Ties go to the
// dialect listed first by All.
type Classifier struct {
	Fallback Kind
}

func (c Classifier) Classify(e *Evidence) Classification {
	res := Classification{Kind: c.Fallback, RunnerUp: c.Fallback}
	if e == nil {
		return res
	}
	res.ObservedSignals = len(e.hints)

	ranked := All()
	slices.SortStableFunc(ranked, func(a, b Kind) int {
		return cmp.Compare(e.tally[b], e.tally[a])
	})
	for _, k := range ranked {
		res.TotalScore += e.tally[k]
	}
	if best := ranked[0]; e.tally[best] > 0 {
		res.Kind, res.Score = best, e.tally[best]
		res.Reason = e.hints[e.strong[best]].Reason
		res.Conclusive = true
		res.Confidence = float64(res.Score) / float64(res.TotalScore)
	}
	if len(ranked) > 1 {
		if second := ranked[1]; e.tally[second] > 0 {
			res.RunnerUp, res.RunnerUpScore = second, e.tally[second]
		}
	}
	return res
}
