package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/resumatch/internal/ranking"
	"github.com/jonathan/resumatch/internal/skills"
	"github.com/jonathan/resumatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleJD     = "Senior Python Developer. Requires SQL and leadership."
	exampleResume = "Experienced developer skilled in SQL and Excel."
)

func findSkill(t *testing.T, entries []types.SkillEntry, label string) types.SkillEntry {
	t.Helper()
	for _, e := range entries {
		if e.Skill == label {
			return e
		}
	}
	t.Fatalf("skill %q not in catalog output", label)
	return types.SkillEntry{}
}

func TestAnalyze_Example(t *testing.T) {
	result, err := Analyze(exampleJD, exampleResume, types.DefaultSettings(), 0)
	require.NoError(t, err)

	assert.Contains(t, result.MissingKeywords, "python")
	assert.Contains(t, result.MissingKeywords, "leadership")

	sql := findSkill(t, result.HardSkills, "sql")
	assert.Equal(t, 1, sql.InJD)
	assert.Equal(t, 1, sql.InResume)

	leadership := findSkill(t, result.SoftSkills, "leadership")
	assert.Equal(t, 1, leadership.InJD)
	assert.Equal(t, 0, leadership.InResume)
	assert.True(t, result.CriticalKeywords.Has("leadership"))

	assert.Greater(t, result.Score, 0)
	assert.Less(t, result.Score, 100)
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, ranking.NoteLow, result.Note)
}

func TestAnalyze_ResultShape(t *testing.T) {
	result, err := Analyze(exampleJD, exampleResume, types.DefaultSettings(), 0)
	require.NoError(t, err)

	assert.Len(t, result.HardSkills, 39)
	assert.Len(t, result.SoftSkills, 15)
	assert.Equal(t, "workday", result.HardSkills[0].Skill)
	assert.Equal(t, "communication", result.SoftSkills[0].Skill)

	require.NotEmpty(t, result.TopTerms)
	assert.Equal(t, "python", result.TopTerms[0].Term)
	for i := 1; i < len(result.TopTerms); i++ {
		assert.GreaterOrEqual(t, result.TopTerms[i-1].MaxScore(), result.TopTerms[i].MaxScore())
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	tests := []struct {
		name   string
		jd     string
		resume string
		field  string
	}{
		{"empty jd", "", "resume text", "job_description"},
		{"blank jd", "  \n\t ", "resume text", "job_description"},
		{"empty resume", "job text", "", "resume"},
		{"both empty", "", "", "job_description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Analyze(tt.jd, tt.resume, types.DefaultSettings(), 0)
			assert.Nil(t, result)
			require.ErrorIs(t, err, ErrInvalidInput)

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
			assert.Equal(t, MsgMissingInput, err.Error())
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	settings := types.DefaultSettings()
	settings.TitleText = "Senior Python Developer"

	first, err := Analyze(exampleJD, exampleResume, settings, 0)
	require.NoError(t, err)
	second, err := Analyze(exampleJD, exampleResume, settings, 0)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestAnalyze_HardWeightMonotonic(t *testing.T) {
	jd := "We need a Python engineer with SQL, Kafka and AWS experience."
	resume := "Python engineer. Built SQL pipelines and Kafka streams."

	score := func(hardWeight float64) int {
		settings := types.DefaultSettings()
		settings.HardWeight = hardWeight
		result, err := Analyze(jd, resume, settings, 0)
		require.NoError(t, err)
		return result.Score
	}

	base := score(1.0)
	for _, w := range []float64{1.5, 2.0, 2.5, 3.0} {
		assert.GreaterOrEqual(t, score(w), base, "hardWeight %.1f", w)
	}
}

func TestAnalyze_IdenticalDocuments(t *testing.T) {
	text := "Payroll specialist with Workday and Excel experience"
	settings := types.DefaultSettings()
	settings.HardWeight = 1.0

	result, err := Analyze(text, text, settings, 0)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, ranking.NoteExcellent, result.Note)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 0, result.CriticalKeywords.Len())
}

func TestAnalyze_NoTokens(t *testing.T) {
	// Every word is a stopword, so the job description vector is empty.
	result, err := Analyze("the and of", "python developer", types.DefaultSettings(), 0)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, ranking.NoteLow, result.Note)
	assert.NotNil(t, result.MissingKeywords)
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	inputs := [][2]string{
		{"python", "java"},
		{"Talent Acquisition Partner", "Talent acquisition partner with recruiting experience"},
		{strings.Repeat("sql ", 50), "sql"},
		{"c++ c# .net", "C++ developer"},
	}
	for _, in := range inputs {
		result, err := Analyze(in[0], in[1], types.DefaultSettings(), 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}

func TestAnalyze_TopK(t *testing.T) {
	jd := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike november oscar papa quebec romeo sierra tango uniform victor whiskey xray yankee zulu"

	result, err := Analyze(jd, "alpha", types.DefaultSettings(), 5)
	require.NoError(t, err)
	assert.Len(t, result.TopTerms, 5)

	result, err = Analyze(jd, "alpha", types.DefaultSettings(), 0)
	require.NoError(t, err)
	assert.Len(t, result.TopTerms, types.DefaultTopK)
}

func TestAnalyze_CriticalSubset(t *testing.T) {
	jd := "Recruiting lead for payroll, compliance and stakeholder management. Strong communication."
	resume := "Recruiter with payroll background."

	result, err := Analyze(jd, resume, types.DefaultSettings(), 0)
	require.NoError(t, err)

	allowed := types.NewKeywordSet(skills.LabelTokens(result.HardSkills, skills.MissingFromResume)...)
	for _, tok := range skills.LabelTokens(result.SoftSkills, skills.MissingFromResume) {
		allowed.Add(tok)
	}
	missing := types.NewKeywordSet(result.MissingKeywords...)
	for i, tt := range result.TopTerms {
		if i < 10 && missing.Has(tt.Term) {
			allowed.Add(tt.Term)
		}
	}

	require.Positive(t, result.CriticalKeywords.Len())
	for _, kw := range result.CriticalKeywords.Sorted() {
		assert.True(t, allowed.Has(kw), "unexpected critical keyword %q", kw)
	}
	assert.True(t, result.CriticalKeywords.Has("compliance"))
	assert.True(t, result.CriticalKeywords.Has("stakehold"))
}
