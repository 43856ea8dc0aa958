// Package textproc provides normalization, tokenization, and phrase extraction for
// job description and résumé text.
package textproc

import "strings"

// Normalize lowercases text and replaces every character outside [a-z0-9 +-#.]
// with a space, then collapses whitespace runs and trims the result.
// Tokens such as "c++", "c#" and ".net" survive intact.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if isKept(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// Words returns the normalized words of text in order, without stopword removal or stemming.
// Trailing periods are cut so sentence-final words match their bare form; leading and
// inner dots (".net", "node.js") stay.
func Words(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var words []string
	for _, piece := range strings.Split(normalized, " ") {
		word := strings.TrimRight(piece, ".")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

func isKept(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '+', '-', '#', '.':
		return true
	}
	return false
}
