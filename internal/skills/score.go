package skills

import (
	"github.com/jonathan/resumatch/internal/textproc"
	"github.com/jonathan/resumatch/internal/types"
)

// Scoring holds presence flags for both catalogs, in catalog order.
type Scoring struct {
	HardSkills []types.SkillEntry
	SoftSkills []types.SkillEntry
}

// Score checks every catalog skill against the phrases of the job description and the résumé.
// Matching is exact phrase membership after normalization.
func Score(jdText, resumeText string) Scoring {
	jdPhrases := textproc.ExtractPhrases(jdText)
	resumePhrases := textproc.ExtractPhrases(resumeText)

	return Scoring{
		HardSkills: ScoreCatalog(hardSkills, jdPhrases, resumePhrases),
		SoftSkills: ScoreCatalog(softSkills, jdPhrases, resumePhrases),
	}
}

// ScoreCatalog returns one entry per label, preserving catalog order.
func ScoreCatalog(catalog []string, jdPhrases, resumePhrases textproc.PhraseSet) []types.SkillEntry {
	entries := make([]types.SkillEntry, 0, len(catalog))
	for _, label := range catalog {
		normalized := textproc.Normalize(label)
		entries = append(entries, types.SkillEntry{
			Skill:    label,
			InJD:     flag(jdPhrases.Has(normalized)),
			InResume: flag(resumePhrases.Has(normalized)),
		})
	}
	return entries
}

// LabelTokens tokenizes, without stopword removal, the label of every entry accepted
// by keep and returns the tokens flattened in entry order.
func LabelTokens(entries []types.SkillEntry, keep func(types.SkillEntry) bool) []string {
	var tokens []string
	for _, e := range entries {
		if keep(e) {
			tokens = append(tokens, textproc.Tokenize(e.Skill, false)...)
		}
	}
	return tokens
}

// InJD selects entries present in the job description.
func InJD(e types.SkillEntry) bool {
	return e.InJD == 1
}

// MissingFromResume selects entries present in the job description but not the résumé.
func MissingFromResume(e types.SkillEntry) bool {
	return e.Missing()
}

func flag(present bool) int {
	if present {
		return 1
	}
	return 0
}
