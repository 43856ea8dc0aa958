package rendering

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jonathan/resumatch/internal/types"
)

// csvHeader names the columns of the CSV report.
var csvHeader = []string{"section", "item", "jd", "resume"}

// RenderCSV writes one row per fact: score, note, keywords, every catalog skill and every top term.
func RenderCSV(w io.Writer, result *types.AnalysisResult) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		csvHeader,
		{"score", "", strconv.Itoa(result.Score), ""},
		{"note", result.Note, "", ""},
	}
	for _, kw := range result.MissingKeywords {
		rows = append(rows, []string{"missing_keyword", kw, "", ""})
	}
	for _, kw := range result.CriticalKeywords.Sorted() {
		rows = append(rows, []string{"critical_keyword", kw, "", ""})
	}
	for _, e := range result.HardSkills {
		rows = append(rows, []string{"hard_skill", e.Skill, strconv.Itoa(e.InJD), strconv.Itoa(e.InResume)})
	}
	for _, e := range result.SoftSkills {
		rows = append(rows, []string{"soft_skill", e.Skill, strconv.Itoa(e.InJD), strconv.Itoa(e.InResume)})
	}
	for _, t := range result.TopTerms {
		rows = append(rows, []string{
			"top_term", t.Term,
			strconv.FormatFloat(t.JDScore, 'f', 6, 64),
			strconv.FormatFloat(t.ResumeScore, 'f', 6, 64),
		})
	}

	for _, row := range rows {
		row[1] = EscapeCSVCell(row[1])
		if err := cw.Write(row); err != nil {
			return &RenderError{Format: string(FormatCSV), Message: "failed to write row", Cause: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &RenderError{Format: string(FormatCSV), Message: "failed to flush", Cause: err}
	}
	return nil
}
