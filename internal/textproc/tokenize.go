package textproc

import "strings"

// Tokenize normalizes text, optionally drops stopwords, applies StemLite to each
// remaining word and discards tokens shorter than two characters.
// Order and duplicates are preserved.
func Tokenize(text string, useStopwords bool) []string {
	words := Words(text)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if useStopwords && IsStopword(word) {
			continue
		}
		token := StemLite(word)
		if len(token) <= 1 {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// StemLite strips a few common English suffixes. The first matching rule wins.
//
// The acronym guard compares the word with its upper-case form. Tokenize feeds it
// lowercased input, so the guard only holds for words without letters (e.g. "2024").
// That behavior is kept as-is so scores stay stable.
func StemLite(word string) string {
	n := len(word)
	if n <= 3 {
		return word
	}

	if strings.ToUpper(word) == word && n <= 5 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && n > 4:
		return word[:n-3] + "y"
	case strings.HasSuffix(word, "ing") && n > 5:
		return word[:n-3]
	case strings.HasSuffix(word, "ed") && n > 4:
		return word[:n-2]
	case strings.HasSuffix(word, "ers") && n > 5:
		return word[:n-3]
	case strings.HasSuffix(word, "er") && n > 4:
		return word[:n-2]
	case strings.HasSuffix(word, "ly") && n > 4:
		return word[:n-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:n-1]
	}

	return word
}
