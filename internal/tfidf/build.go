package tfidf

import (
	"strings"

	"github.com/jonathan/resumatch/internal/skills"
	"github.com/jonathan/resumatch/internal/textproc"
	"github.com/jonathan/resumatch/internal/types"
)

// Vectors is the output of Build.
type Vectors struct {
	JD           *TermVector
	Resume       *TermVector
	IDF          map[string]float64
	JDTokens     []string // job description tokens before boosting
	ResumeTokens []string
	Skills       skills.Scoring
}

// Build tokenizes both documents, applies title and skill boosts to the job description
// counts, and returns TF-IDF vectors sharing one IDF map.
//
// A boost of n adds the boosted token sequence n times to the job description counts.
// Accumulating counts gives the same numbers as concatenating the sequence n times.
func Build(jdText, resumeText string, settings types.AnalysisSettings) *Vectors {
	jdTokens := textproc.Tokenize(jdText, settings.UseStopwords)
	resumeTokens := textproc.Tokenize(resumeText, settings.UseStopwords)

	jdCounts := NewCounter()
	jdCounts.AddAll(jdTokens, 1)

	if strings.TrimSpace(settings.TitleText) != "" {
		titleTokens := textproc.Tokenize(settings.TitleText, settings.UseStopwords)
		addBoosted(jdCounts, titleTokens, Boost(settings.TitleWeight))
	}

	scoring := skills.Score(jdText, resumeText)
	addBoosted(jdCounts, skills.LabelTokens(scoring.HardSkills, skills.InJD), Boost(settings.HardWeight))
	addBoosted(jdCounts, skills.LabelTokens(scoring.SoftSkills, skills.InJD), Boost(settings.SoftWeight))

	resumeCounts := NewCounter()
	resumeCounts.AddAll(resumeTokens, 1)

	idf := IDF(jdCounts.Set(), resumeCounts.Set())

	return &Vectors{
		JD:           Weight(TermFreqCounts(jdCounts), idf),
		Resume:       Weight(TermFreqCounts(resumeCounts), idf),
		IDF:          idf,
		JDTokens:     jdTokens,
		ResumeTokens: resumeTokens,
		Skills:       scoring,
	}
}

func addBoosted(c *Counter, tokens []string, boost int) {
	if boost <= 0 || len(tokens) == 0 {
		return
	}
	c.AddAll(tokens, boost)
}
