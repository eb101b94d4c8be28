// llm/client.go
package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers with no text at all.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// Attachment is an inline file sent along with the prompt.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Request is everything a single generation call needs.
// When Schema is set the model is asked for JSON matching it.
type Request struct {
	SystemInstruction string
	Prompt            string
	Attachments       []Attachment
	Schema            *genai.Schema
}

// Client is anything that can turn a Request into model text.
// The Gemini client implements it; tests use a mock.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
