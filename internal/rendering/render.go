package rendering

import (
	"io"

	"github.com/jonathan/resumatch/internal/types"
)

// Format selects a report encoding.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV}
}

// ParseFormat converts a format name. The empty string selects text.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", &RenderError{Format: name, Message: "unknown format (want text, json or csv)"}
}

// ContentType returns the HTTP media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render writes result to w in the given format.
func Render(w io.Writer, format Format, result *types.AnalysisResult) error {
	if result == nil {
		return &RenderError{Format: string(format), Message: "no analysis result to render"}
	}
	switch format {
	case FormatText:
		return RenderText(w, result)
	case FormatJSON:
		return RenderJSON(w, result)
	case FormatCSV:
		return RenderCSV(w, result)
	}
	return &RenderError{Format: string(format), Message: "unsupported format"}
}
