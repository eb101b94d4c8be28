// llm/gemini.go
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// GeminiConfig configures a GeminiClient.
type GeminiConfig struct {
	APIKey      string
	Model       string
	MaxAttempts int

	// BaseURL and HTTPClient are only set in tests.
	BaseURL    string
	HTTPClient *http.Client
}

////////////////////////////////////////////////////////////////////////

// GeminiClient implements Client using the Google Gen AI SDK.
type GeminiClient struct {
	client      *genai.Client
	model       string
	maxAttempts int
	log         logrus.FieldLogger
}

// NewGeminiClient creates a Gemini API backed client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log logrus.FieldLogger) (*GeminiClient, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		maxAttempts: cfg.MaxAttempts,
		log:         log.WithField("model", model),
	}, nil
}

// Generate sends the request to Gemini and returns the text of the first candidate.
// Transient failures are retried up to the configured number of attempts.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(buildParts(req), genai.RoleUser)}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
	}

	return Retry(ctx, g.maxAttempts, func() (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
		if err != nil {
			g.log.WithError(err).Warn("gemini generate content failed")
			return "", fmt.Errorf("gemini generate content: %w", err)
		}

		text := resp.Text()
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	})
}

// buildParts puts the prompt first, then the attachments, the order the
// model sees them in.
func buildParts(req Request) []*genai.Part {
	parts := make([]*genai.Part, 0, len(req.Attachments)+1)
	if req.Prompt != "" {
		parts = append(parts, genai.NewPartFromText(req.Prompt))
	}
	for _, a := range req.Attachments {
		parts = append(parts, genai.NewPartFromBytes(a.Data, a.MIMEType))
	}
	return parts
}
