// Package tfidf builds weighted term-frequency and TF-IDF vectors for a job description and a résumé.
package tfidf

import "math"

// TermVector is a sparse term-to-weight mapping that remembers the order in which
// terms were first inserted. Iteration, and therefore every float summation, follows
// that order so results are reproducible.
type TermVector struct {
	terms   []string
	weights map[string]float64
}

// NewTermVector returns an empty vector.
func NewTermVector() *TermVector {
	return &TermVector{weights: make(map[string]float64)}
}

// Set assigns weight to term, appending the term if it is new.
func (v *TermVector) Set(term string, weight float64) {
	if _, ok := v.weights[term]; !ok {
		v.terms = append(v.terms, term)
	}
	v.weights[term] = weight
}

// Get returns the weight of term and whether it is present. Absent terms weigh 0.
func (v *TermVector) Get(term string) (float64, bool) {
	if v == nil {
		return 0, false
	}
	w, ok := v.weights[term]
	return w, ok
}

// Weight returns the weight of term, or 0 when absent.
func (v *TermVector) Weight(term string) float64 {
	w, _ := v.Get(term)
	return w
}

// Terms returns the terms in insertion order.
func (v *TermVector) Terms() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.terms...)
}

// Each calls fn for every term in insertion order.
func (v *TermVector) Each(fn func(term string, weight float64)) {
	if v == nil {
		return
	}
	for _, t := range v.terms {
		fn(t, v.weights[t])
	}
}

// Len returns the number of terms.
func (v *TermVector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Norm returns the Euclidean norm.
func (v *TermVector) Norm() float64 {
	if v == nil {
		return 0
	}
	sum := 0.0
	for _, t := range v.terms {
		w := v.weights[t]
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Map returns a copy of the weights.
func (v *TermVector) Map() map[string]float64 {
	out := make(map[string]float64, v.Len())
	if v == nil {
		return out
	}
	for t, w := range v.weights {
		out[t] = w
	}
	return out
}

// Counter accumulates integer term counts in first-seen order.
type Counter struct {
	terms  []string
	counts map[string]int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increases the count of term by n.
func (c *Counter) Add(term string, n int) {
	if _, ok := c.counts[term]; !ok {
		c.terms = append(c.terms, term)
	}
	c.counts[term] += n
}

// AddAll adds n to every token of the sequence, in order.
func (c *Counter) AddAll(tokens []string, n int) {
	for _, t := range tokens {
		c.Add(t, n)
	}
}

// Count returns the count of term.
func (c *Counter) Count(term string) int {
	return c.counts[term]
}

// Set returns the distinct terms as a set.
func (c *Counter) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(c.terms))
	for _, t := range c.terms {
		set[t] = struct{}{}
	}
	return set
}
