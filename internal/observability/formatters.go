// Package observability provides logging, metrics and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxKeywordsToShow limits keyword lists in the summary box
	maxKeywordsToShow = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the score, note and keyword gaps of an analysis.
func (p *Printer) PrintSummary(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(wrap(result.Note, boxWidth-4))
	sb.WriteString("\n")

	if len(result.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing keywords (%d):\n", len(result.MissingKeywords)))
		sb.WriteString(wrap(joinLimited(result.MissingKeywords, maxKeywordsToShow), boxWidth-6))
		sb.WriteString("\n")
	}

	if result.CriticalKeywords.Len() > 0 {
		sb.WriteString(fmt.Sprintf("\nCritical keywords (%d):\n", result.CriticalKeywords.Len()))
		sb.WriteString(wrap(joinLimited(result.CriticalKeywords.Sorted(), maxKeywordsToShow), boxWidth-6))
		sb.WriteString("\n")
	}

	p.printBox("MATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillCoverage outputs the skills found in either document with presence marks.
func (p *Printer) PrintSkillCoverage(title string, entries []types.SkillEntry) {
	var sb strings.Builder
	shown := 0
	for _, e := range entries {
		if !e.Relevant() {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-28s JD %s  Résumé %s\n", e.Skill, mark(e.InJD), mark(e.InResume)))
		shown++
	}
	if shown == 0 {
		sb.WriteString("No skills detected")
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopTerms outputs the highest weighted terms.
func (p *Printer) PrintTopTerms(terms []types.TopTerm) {
	if len(terms) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(terms), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		t := terms[i]
		sb.WriteString(fmt.Sprintf("#%-3d %-24s JD %.3f  Résumé %.3f\n", i+1, truncate(t.Term, 24), t.JDScore, t.ResumeScore))
	}
	if len(terms) > count {
		sb.WriteString(fmt.Sprintf("... and %d more terms", len(terms)-count))
	}

	p.printBox("TOP TERMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatch outputs one line per batch result in the given order.
func (p *Printer) PrintBatch(results []types.BatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range results {
		if r.Error != "" {
			sb.WriteString(fmt.Sprintf("%2d. %-32s ⚠ %s\n", i+1, truncate(r.Name, 32), r.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("%2d. %-32s %3d/100\n", i+1, truncate(r.Name, 32), r.Result.Score))
	}

	p.printBox(fmt.Sprintf("BATCH RESULTS (%d)", len(results)), strings.TrimSuffix(sb.String(), "\n"))
}

func mark(flag int) string {
	if flag == 1 {
		return "✓"
	}
	return "✗"
}

func joinLimited(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... and %d more", strings.Join(items[:limit], ", "), len(items)-limit)
}

// truncate shortens s to width runes, ending with "..." when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// wrap breaks text on spaces so no line exceeds width runes.
func wrap(text string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
