// Package types provides type definitions for structured data used throughout resumatch.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
)

// DefaultTopK is the number of top terms returned when the caller does not ask for a specific count.
const DefaultTopK = 20

// AnalysisSettings controls how the job description is weighted against the résumé.
// Ranges are enforced by callers through the validate tags; the engine accepts any value.
type AnalysisSettings struct {
	TitleText    string  `json:"title_text" mapstructure:"title_text"`
	TitleWeight  float64 `json:"title_weight" mapstructure:"title_weight" validate:"gte=1.0,lte=2.0"`
	HardWeight   float64 `json:"hard_weight" mapstructure:"hard_weight" validate:"gte=1.0,lte=3.0"`
	SoftWeight   float64 `json:"soft_weight" mapstructure:"soft_weight" validate:"gte=1.0,lte=2.0"`
	UseStopwords bool    `json:"use_stopwords" mapstructure:"use_stopwords"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() AnalysisSettings {
	return AnalysisSettings{
		TitleWeight:  1.2,
		HardWeight:   1.5,
		SoftWeight:   1.0,
		UseStopwords: true,
	}
}

// SkillEntry records whether a catalog skill appears in the job description and the résumé.
// InJD and InResume are 0 or 1.
type SkillEntry struct {
	Skill    string `json:"skill"`
	InJD     int    `json:"in_jd"`
	InResume int    `json:"in_resume"`
}

// Missing reports whether the skill is asked for by the job description but absent from the résumé.
func (s SkillEntry) Missing() bool {
	return s.InJD == 1 && s.InResume == 0
}

// Relevant reports whether the skill appears in either document.
func (s SkillEntry) Relevant() bool {
	return s.InJD == 1 || s.InResume == 1
}

// TopTerm is one row of the top-terms ranking.
type TopTerm struct {
	Term        string  `json:"term"`
	JDScore     float64 `json:"jd_score"`
	ResumeScore float64 `json:"resume_score"`
}

// MaxScore returns the larger of the two document scores.
func (t TopTerm) MaxScore() float64 {
	return max(t.JDScore, t.ResumeScore)
}

// AnalysisResult is the outcome of comparing one job description with one résumé.
type AnalysisResult struct {
	Score            int          `json:"score"`
	Note             string       `json:"note"`
	MissingKeywords  []string     `json:"missing_keywords"`
	CriticalKeywords KeywordSet   `json:"critical_keywords"`
	HardSkills       []SkillEntry `json:"hard_skills"`
	SoftSkills       []SkillEntry `json:"soft_skills"`
	TopTerms         []TopTerm    `json:"top_terms"`
}

// KeywordSet is an unordered set of tokens. It serializes as a sorted JSON array.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from the given tokens.
func NewKeywordSet(tokens ...string) KeywordSet {
	set := make(KeywordSet, len(tokens))
	for _, t := range tokens {
		set.Add(t)
	}
	return set
}

// Add inserts token into the set.
func (k KeywordSet) Add(token string) {
	k[token] = struct{}{}
}

// Has reports whether token is in the set.
func (k KeywordSet) Has(token string) bool {
	_, ok := k[token]
	return ok
}

// Len returns the number of tokens in the set.
func (k KeywordSet) Len() int {
	return len(k)
}

// Sorted returns the tokens in lexical order.
func (k KeywordSet) Sorted() []string {
	out := make([]string, 0, len(k))
	for t := range k {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (k KeywordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Sorted())
}

// UnmarshalJSON decodes a JSON array into the set.
func (k *KeywordSet) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	*k = NewKeywordSet(tokens...)
	return nil
}
