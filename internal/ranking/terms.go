package ranking

import (
	"sort"

	"github.com/jonathan/resumatch/internal/tfidf"
	"github.com/jonathan/resumatch/internal/types"
)

// TopTerms ranks the union of both vectors' terms by the larger of their two scores and
// returns the first k. Job description terms come first in the candidate list, then
// résumé-only terms, each in insertion order; the sort is stable so ties keep that order.
// A k of zero or less selects types.DefaultTopK.
func TopTerms(jd, resume *tfidf.TermVector, k int) []types.TopTerm {
	if k <= 0 {
		k = types.DefaultTopK
	}

	terms := make([]types.TopTerm, 0, jd.Len()+resume.Len())
	seen := make(map[string]struct{}, jd.Len()+resume.Len())
	add := func(term string, _ float64) {
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, types.TopTerm{
			Term:        term,
			JDScore:     jd.Weight(term),
			ResumeScore: resume.Weight(term),
		})
	}
	jd.Each(add)
	resume.Each(add)

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].MaxScore() > terms[j].MaxScore()
	})

	if len(terms) > k {
		terms = terms[:k]
	}
	return terms
}
