package models

import "errors"

// ErrUnreadableDocument means both extraction stages produced no text.
// The message is user-facing and returned verbatim with HTTP 400.
var ErrUnreadableDocument = errors.New("Could not extract text from PDF or image. Make sure your resume contains readable text.")

// MalformedOutputError means the model replied with something that is not
// valid JSON. Raw keeps the unparsed reply so operators can inspect drift
// in the output schema.
type MalformedOutputError struct {
	Raw string
}

func (e *MalformedOutputError) Error() string {
	return "Gemini output is not valid JSON."
}
