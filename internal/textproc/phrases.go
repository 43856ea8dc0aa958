package textproc

import "strings"

// maxPhraseWords is the longest n-gram collected by ExtractPhrases.
const maxPhraseWords = 3

// PhraseSet holds normalized 1- to 3-word spans for exact phrase lookups.
type PhraseSet map[string]struct{}

// Has reports whether phrase is in the set. The phrase must already be normalized.
func (p PhraseSet) Has(phrase string) bool {
	_, ok := p[phrase]
	return ok
}

// ExtractPhrases returns every single word, adjacent word pair and adjacent word triple
// of the normalized text. Stopwords are kept so skills like "attention to detail" match.
func ExtractPhrases(text string) PhraseSet {
	words := Words(text)
	phrases := make(PhraseSet, len(words)*maxPhraseWords)
	for n := 1; n <= maxPhraseWords; n++ {
		for i := 0; i+n <= len(words); i++ {
			phrases[strings.Join(words[i:i+n], " ")] = struct{}{}
		}
	}
	return phrases
}
