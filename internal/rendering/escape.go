package rendering

import "strings"

// EscapeCSVCell neutralizes cells that spreadsheet applications would evaluate as formulas
// by prefixing them with a single quote.
func EscapeCSVCell(cell string) string {
	if cell == "" {
		return ""
	}
	switch cell[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + cell
	}
	return cell
}

// EscapeTableCell replaces the pipe separator used by the text report so a cell cannot
// split into two columns. Newlines are flattened to spaces.
func EscapeTableCell(cell string) string {
	if !strings.ContainsAny(cell, "|\n\r") {
		return cell
	}
	r := strings.NewReplacer("|", "/", "\r\n", " ", "\n", " ", "\r", " ")
	return r.Replace(cell)
}
