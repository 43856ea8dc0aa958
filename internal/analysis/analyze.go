// Package analysis computes the keyword match between a job description and a résumé.
package analysis

import (
	"strings"

	"github.com/jonathan/resumatch/internal/ranking"
	"github.com/jonathan/resumatch/internal/tfidf"
	"github.com/jonathan/resumatch/internal/types"
)

// Analyze scores how well a résumé covers a job description. It is pure and deterministic:
// identical arguments always produce identical results. Settings are used as given; callers
// validate ranges. A topK of zero or less selects types.DefaultTopK.
func Analyze(jdText, resumeText string, settings types.AnalysisSettings, topK int) (*types.AnalysisResult, error) {
	jdText = strings.TrimSpace(jdText)
	resumeText = strings.TrimSpace(resumeText)
	if jdText == "" {
		return nil, &InputError{Field: "job_description", Message: MsgMissingInput}
	}
	if resumeText == "" {
		return nil, &InputError{Field: "resume", Message: MsgMissingInput}
	}

	vectors := tfidf.Build(jdText, resumeText, settings)

	score := ranking.MatchScore(ranking.CosineSim(vectors.JD, vectors.Resume))
	top := ranking.TopTerms(vectors.JD, vectors.Resume, topK)
	missing := ranking.MissingKeywords(jdText, resumeText, settings.UseStopwords)

	return &types.AnalysisResult{
		Score:            score,
		Note:             ranking.ScoreNote(score),
		MissingKeywords:  missing,
		CriticalKeywords: ranking.CriticalKeywords(missing, top, vectors.Skills),
		HardSkills:       vectors.Skills.HardSkills,
		SoftSkills:       vectors.Skills.SoftSkills,
		TopTerms:         top,
	}, nil
}
