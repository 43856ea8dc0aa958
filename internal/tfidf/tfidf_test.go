package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(terms ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

func TestTermFreq(t *testing.T) {
	tf := TermFreq([]string{"sql", "python", "sql"})

	require.Equal(t, []string{"sql", "python"}, tf.Terms())
	assert.InDelta(t, 2/math.Sqrt(5), tf.Weight("sql"), 1e-12)
	assert.InDelta(t, 1/math.Sqrt(5), tf.Weight("python"), 1e-12)
	assert.InDelta(t, 1.0, tf.Norm(), 1e-12)
	assert.Zero(t, tf.Weight("absent"))
}

func TestTermFreq_Empty(t *testing.T) {
	tf := TermFreq(nil)
	assert.Equal(t, 0, tf.Len())
	assert.Zero(t, tf.Norm())
}

func TestIDF(t *testing.T) {
	idf := IDF(set("sql", "python"), set("sql", "excel"))

	require.Len(t, idf, 3)
	assert.Equal(t, 1.0, idf["sql"])
	assert.InDelta(t, math.Log(1.5)+1, idf["python"], 1e-12)
	assert.InDelta(t, math.Log(1.5)+1, idf["excel"], 1e-12)
	assert.Less(t, idf["sql"], idf["python"])
}

func TestWeight(t *testing.T) {
	tf := NewTermVector()
	tf.Set("a", 0.5)
	tf.Set("b", 0.25)

	w := Weight(tf, map[string]float64{"a": 2})

	assert.Equal(t, []string{"a", "b"}, w.Terms())
	assert.Equal(t, 1.0, w.Weight("a"))
	assert.Equal(t, 0.25, w.Weight("b"))
}

func TestBoost(t *testing.T) {
	tests := []struct {
		weight float64
		want   int
	}{
		{1.0, 0},
		{1.2, 0},
		{1.25, 1},
		{1.5, 1},
		{2.0, 2},
		{3.0, 4},
		{0.75, 0},
		{0.5, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Boost(tt.weight), "weight %v", tt.weight)
	}
}

func TestTermVector_SetKeepsFirstPosition(t *testing.T) {
	v := NewTermVector()
	v.Set("x", 1)
	v.Set("y", 2)
	v.Set("x", 3)

	assert.Equal(t, []string{"x", "y"}, v.Terms())
	assert.Equal(t, 3.0, v.Weight("x"))
	assert.Equal(t, map[string]float64{"x": 3, "y": 2}, v.Map())
}

func TestTermVector_NilSafe(t *testing.T) {
	var v *TermVector
	assert.Equal(t, 0, v.Len())
	assert.Zero(t, v.Norm())
	assert.Nil(t, v.Terms())
	assert.Empty(t, v.Map())
}
