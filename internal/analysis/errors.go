package analysis

import "errors"

// ErrInvalidInput is matched with errors.Is for any input rejected before analysis.
var ErrInvalidInput = errors.New("invalid input")

// MsgMissingInput is shown to users when either document is blank.
const MsgMissingInput = "Please provide both Job Description and Résumé to analyze."

// InputError reports a document that cannot be analyzed.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
