package ranking

import (
	"github.com/jonathan/resumatch/internal/skills"
	"github.com/jonathan/resumatch/internal/textproc"
	"github.com/jonathan/resumatch/internal/types"
)

const (
	// maxMissingKeywords caps the missing keyword list.
	maxMissingKeywords = 60
	// minKeywordLength is the shortest token reported as missing.
	minKeywordLength = 3
	// criticalTopTerms is how many leading top terms are checked against the missing list.
	criticalTopTerms = 10
)

// MissingKeywords lists job description tokens absent from the résumé, in first-seen order,
// skipping tokens shorter than three characters and purely numeric tokens.
func MissingKeywords(jdText, resumeText string, useStopwords bool) []string {
	resumeTokens := make(map[string]struct{})
	for _, t := range textproc.Tokenize(resumeText, useStopwords) {
		resumeTokens[t] = struct{}{}
	}

	missing := make([]string, 0)
	seen := make(map[string]struct{})
	for _, t := range textproc.Tokenize(jdText, useStopwords) {
		if len(t) < minKeywordLength || isNumeric(t) {
			continue
		}
		if _, ok := resumeTokens[t]; ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		missing = append(missing, t)
	}

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return missing
}

// CriticalKeywords collects tokens of skills the job description asks for but the résumé
// lacks, plus any of the first ten top terms that are also missing keywords.
func CriticalKeywords(missing []string, topTerms []types.TopTerm, scoring skills.Scoring) types.KeywordSet {
	critical := types.NewKeywordSet(skills.LabelTokens(scoring.HardSkills, skills.MissingFromResume)...)
	for _, t := range skills.LabelTokens(scoring.SoftSkills, skills.MissingFromResume) {
		critical.Add(t)
	}

	missingSet := types.NewKeywordSet(missing...)
	for i, term := range topTerms {
		if i >= criticalTopTerms {
			break
		}
		if missingSet.Has(term.Term) {
			critical.Add(term.Term)
		}
	}
	return critical
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
