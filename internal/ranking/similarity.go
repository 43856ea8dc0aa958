package ranking

import (
	"sort"

	"github.com/jonathan/resumatch/internal/tfidf"
)

// Score note thresholds.
const (
	excellentThreshold = 85
	strongThreshold    = 70
	decentThreshold    = 55
)

// Score notes shown next to the match score. Consumers compare these strings verbatim.
const (
	NoteExcellent = "Excellent match — you're highly aligned with this job description."
	NoteStrong    = "Strong match — consider adding missing keywords for an extra boost."
	NoteDecent    = "Decent match — consider tailoring your achievements to better reflect the job requirements."
	NoteLow       = "Low match — customize your résumé for this specific role to improve your chances."
)

// CosineSim returns the cosine of the angle between two vectors, or 0 when either has zero magnitude.
// Shared terms are summed in lexical order so the result does not depend on argument order.
func CosineSim(a, b *tfidf.TermVector) float64 {
	var shared []string
	a.Each(func(term string, _ float64) {
		if _, ok := b.Get(term); ok {
			shared = append(shared, term)
		}
	})
	sort.Strings(shared)

	dot := 0.0
	for _, term := range shared {
		dot += a.Weight(term) * b.Weight(term)
	}

	normA, normB := a.Norm(), b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

// MatchScore scales a similarity to an integer percentage clamped to [0, 100].
func MatchScore(similarity float64) int {
	pct := min(max(similarity*100, 0), 100)
	return int(tfidf.Round(pct))
}

// ScoreNote returns the explanatory sentence for a match score.
func ScoreNote(score int) string {
	switch {
	case score >= excellentThreshold:
		return NoteExcellent
	case score >= strongThreshold:
		return NoteStrong
	case score >= decentThreshold:
		return NoteDecent
	default:
		return NoteLow
	}
}
