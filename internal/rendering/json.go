package rendering

import (
	"encoding/json"
	"io"

	"github.com/jonathan/resumatch/internal/types"
)

// RenderJSON writes the result as indented JSON followed by a newline.
func RenderJSON(w io.Writer, result *types.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return &RenderError{Format: string(FormatJSON), Message: "failed to encode result", Cause: err}
	}
	return nil
}
