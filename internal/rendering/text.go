package rendering

import (
	"io"
	"strings"
	"text/template"

	"github.com/jonathan/resumatch/internal/types"
)

const (
	reportTitle  = "Resumatch — Analysis Results"
	reportFooter = "Generated by Resumatch — Offline Keyword Match"
	ruleWidth    = 50
)

const textReport = `{{.Title}}
{{rule "="}}

Match Score: {{.Result.Score}}/100
Note: {{.Result.Note}}

Missing Keywords
{{rule "-"}}
{{if .Result.MissingKeywords}}{{join .Result.MissingKeywords ", "}}{{else}}None — excellent coverage!{{end}}

{{template "skills" .Hard}}
{{template "skills" .Soft}}
Top Terms (TF-IDF)
{{rule "-"}}
Term | JD Score | Résumé Score
{{range .Result.TopTerms}}{{cell .Term}} | {{printf "%.3f" .JDScore}} | {{printf "%.3f" .ResumeScore}}
{{end}}
{{rule "="}}
{{.Footer}}
{{define "skills"}}{{.Heading}} Skills Coverage
{{rule "-"}}
{{if .Entries}}Skill | In JD | In Résumé
{{range .Entries}}{{cell .Skill}} | {{.InJD}} | {{.InResume}}
{{end}}{{else}}No {{.Label}} skills detected
{{end}}{{end}}`

var textTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rule": func(ch string) string { return strings.Repeat(ch, ruleWidth) },
	"join": strings.Join,
	"cell": EscapeTableCell,
}).Parse(textReport))

type skillSection struct {
	Heading string
	Label   string
	Entries []types.SkillEntry
}

type textData struct {
	Title  string
	Footer string
	Result *types.AnalysisResult
	Hard   skillSection
	Soft   skillSection
}

// RenderText writes the plain-text report. Skill tables list only skills found in
// at least one document.
func RenderText(w io.Writer, result *types.AnalysisResult) error {
	data := textData{
		Title:  reportTitle,
		Footer: reportFooter,
		Result: result,
		Hard:   skillSection{Heading: "Hard", Label: "hard", Entries: relevant(result.HardSkills)},
		Soft:   skillSection{Heading: "Soft", Label: "soft", Entries: relevant(result.SoftSkills)},
	}
	if err := textTemplate.Execute(w, data); err != nil {
		return &TemplateError{Message: "failed to execute text report", Cause: err}
	}
	return nil
}

func relevant(entries []types.SkillEntry) []types.SkillEntry {
	var out []types.SkillEntry
	for _, e := range entries {
		if e.Relevant() {
			out = append(out, e)
		}
	}
	return out
}
