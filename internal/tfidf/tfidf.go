package tfidf

import "math"

// TermFreq counts tokens and L2-normalizes the counts.
func TermFreq(tokens []string) *TermVector {
	c := NewCounter()
	c.AddAll(tokens, 1)
	return TermFreqCounts(c)
}

// TermFreqCounts L2-normalizes accumulated counts. An empty counter yields an empty vector.
func TermFreqCounts(c *Counter) *TermVector {
	sumSquares := 0.0
	for _, t := range c.terms {
		n := float64(c.counts[t])
		sumSquares += n * n
	}
	magnitude := math.Sqrt(sumSquares)

	tf := NewTermVector()
	for _, t := range c.terms {
		n := float64(c.counts[t])
		if magnitude > 0 {
			n /= magnitude
		}
		tf.Set(t, n)
	}
	return tf
}

// IDF computes the smoothed inverse document frequency ln((N+1)/(df+1)) + 1 for every
// term of the given document vocabularies, where N is the number of vocabularies.
func IDF(docSets ...map[string]struct{}) map[string]float64 {
	n := float64(len(docSets))
	idf := make(map[string]float64)
	for _, set := range docSets {
		for term := range set {
			if _, done := idf[term]; done {
				continue
			}
			df := 0
			for _, other := range docSets {
				if _, ok := other[term]; ok {
					df++
				}
			}
			idf[term] = math.Log((n+1)/(float64(df)+1)) + 1
		}
	}
	return idf
}

// Weight multiplies each term frequency by its IDF. Terms missing from idf use 1.
func Weight(tf *TermVector, idf map[string]float64) *TermVector {
	out := NewTermVector()
	for _, t := range tf.terms {
		factor, ok := idf[t]
		if !ok {
			factor = 1
		}
		out.Set(t, tf.weights[t]*factor)
	}
	return out
}

// Round rounds half up, so 0.5 becomes 1 and -0.5 becomes 0.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Boost converts a weight slider value into a repetition count: round((weight-1)*2).
// Zero or negative results mean no boost.
func Boost(weight float64) int {
	return int(Round((weight - 1.0) * 2))
}
