package textproc

import "sort"

// stopwords is the fixed English function-word list removed during tokenization.
// Changing it changes scores for existing inputs.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but",
		"by", "can", "did", "do", "does", "doing", "don", "down", "during", "each", "few", "for",
		"from", "further", "had", "has", "have", "having", "he", "her", "here", "hers", "herself",
		"him", "himself", "his", "how", "i", "if", "in", "into", "is", "it", "its", "itself", "just",
		"me", "might", "more", "most", "must", "my", "myself", "no", "nor", "not", "now", "of", "off",
		"on", "once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own", "s",
		"same", "she", "should", "so", "some", "such", "t", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this", "those", "through", "to",
		"too", "under", "until", "up", "very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours", "yourself",
		"yourselves",
	} {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether word is in the stopword list. The word must already be normalized.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Stopwords returns the stopword list in sorted order.
func Stopwords() []string {
	words := make([]string, 0, len(stopwords))
	for w := range stopwords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
