// Package review scores a CV with the LLM against a fixed rubric and derives
// the per-section fix suggestions from a stored review.
package review

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pranav244872/cvreview/document"
	"github.com/pranav244872/cvreview/llm"
	"github.com/pranav244872/cvreview/storage"
	"github.com/sirupsen/logrus"
)

// ErrNoReview is returned by Fix when the file has not been reviewed yet.
var ErrNoReview = errors.New("no review data yet, run a CV review first")

// ErrUnsupportedFile is returned for files the reviewer cannot send to the model.
var ErrUnsupportedFile = errors.New("unsupported CV file type")

//go:embed prompt.txt
var systemPrompt string

// reviewSuffix names the stored review next to its upload.
const reviewSuffix = ".json"

// Reviewer runs CV reviews.
type Reviewer struct {
	llmClient llm.Client
	store     storage.Provider
	log       logrus.FieldLogger
}

// NewReviewer creates a Reviewer reading uploads from and writing reviews to store.
func NewReviewer(llmClient llm.Client, store storage.Provider, log logrus.FieldLogger) *Reviewer {
	return &Reviewer{
		llmClient: llmClient,
		store:     store,
		log:       log.WithField("component", "review"),
	}
}

////////////////////////////////////////////////////////////////////////
// Review
////////////////////////////////////////////////////////////////////////

// Review scores an uploaded CV and stores the result as <originalFile>.json.
// It returns the review JSON.
func (r *Reviewer) Review(ctx context.Context, originalFile string) (string, error) {
	// Step 1: Load the upload.
	data, err := r.store.Load(ctx, originalFile)
	if err != nil {
		return "", fmt.Errorf("failed to load CV: %w", err)
	}

	// Step 2: Build the request. Word files go in as text.
	req, err := buildRequest(originalFile, data)
	if err != nil {
		return "", err
	}

	// Step 3: Ask the model. A PDF the model refuses inline is retried as text.
	raw, err := r.llmClient.Generate(ctx, req)
	if err != nil && ctx.Err() == nil && document.MIMEType(originalFile) == document.MIMEPDF {
		raw, err = r.reviewPDFText(ctx, originalFile, data, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to review CV: %w", err)
	}
	raw = llm.CleanJSON(raw)

	// Step 4: Make sure the answer is a review before storing it.
	var parsed CVReview
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", fmt.Errorf("failed to decode review: %w", err)
	}

	// Step 5: Store it for the fix step.
	if err := r.store.Save(ctx, originalFile+reviewSuffix, []byte(raw), "application/json"); err != nil {
		return "", fmt.Errorf("failed to store review: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"file":   originalFile,
		"skills": len(parsed.Skills),
	}).Info("CV reviewed")

	return raw, nil
}

// reviewPDFText sends the extracted text of a PDF. If the PDF has no text
// layer the inline failure is returned.
func (r *Reviewer) reviewPDFText(ctx context.Context, originalFile string, data []byte, inlineErr error) (string, error) {
	text, err := document.ExtractText(document.MIMEPDF, data)
	if err != nil || text == "" {
		return "", inlineErr
	}

	r.log.WithError(inlineErr).WithField("file", originalFile).Warn("Inline PDF review failed, retrying with extracted text")
	return r.llmClient.Generate(ctx, textRequest(text))
}

func textRequest(text string) llm.Request {
	return llm.Request{
		SystemInstruction: systemPrompt,
		Prompt:            "Review this CV. Its text content follows.\n\n" + text,
		Schema:            cvReviewSchema,
	}
}

func buildRequest(filename string, data []byte) (llm.Request, error) {
	mime := document.MIMEType(filename)
	req := llm.Request{
		SystemInstruction: systemPrompt,
		Prompt:            "Review this CV.",
		Schema:            cvReviewSchema,
	}

	switch {
	case document.InlineSupported(mime):
		req.Attachments = []llm.Attachment{{MIMEType: mime, Data: data}}

	case mime == document.MIMEDOCX:
		text, err := document.ExtractText(mime, data)
		if err != nil {
			return llm.Request{}, fmt.Errorf("failed to read CV: %w", err)
		}
		req = textRequest(text)

	default:
		return llm.Request{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, mime)
	}

	return req, nil
}

////////////////////////////////////////////////////////////////////////
// Fix
////////////////////////////////////////////////////////////////////////

// storedSections is the subset of a stored review the fix step reads. The
// suggestions are kept raw so extra keys from the model pass through.
type storedSections struct {
	Completeness *struct {
		Suggestions json.RawMessage `json:"goiYChinhSua"`
	} `json:"phanTinhDayDu"`
	Presentation *struct {
		Suggestions json.RawMessage `json:"goiYChinhSua"`
	} `json:"phanTrinhBay"`
	Content *struct {
		Suggestions json.RawMessage `json:"goiYChinhSua"`
	} `json:"phanNoiDung"`
}

// Fix returns the suggestions of the stored review of originalFile as JSON.
// It returns ErrNoReview if the file was never reviewed.
func (r *Reviewer) Fix(ctx context.Context, originalFile string) (string, error) {
	data, err := r.store.Load(ctx, originalFile+reviewSuffix)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoReview
	}
	if err != nil {
		return "", fmt.Errorf("failed to load review: %w", err)
	}

	var sections storedSections
	if err := json.Unmarshal(data, &sections); err != nil {
		return "", fmt.Errorf("failed to decode stored review: %w", err)
	}

	fix := FixSuggestions{
		Completeness: emptyString,
		Presentation: emptyString,
		Content:      emptyString,
	}
	if sections.Completeness != nil {
		fix.Completeness = orEmpty(sections.Completeness.Suggestions)
	}
	if sections.Presentation != nil {
		fix.Presentation = orEmpty(sections.Presentation.Suggestions)
	}
	if sections.Content != nil {
		fix.Content = orEmpty(sections.Content.Suggestions)
	}

	out, err := json.Marshal(fix)
	if err != nil {
		return "", fmt.Errorf("failed to encode fix suggestions: %w", err)
	}
	return string(out), nil
}

var emptyString = json.RawMessage(`""`)

// orEmpty maps a missing, null, false or empty-string value to "".
func orEmpty(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", `""`, "0":
		return emptyString
	}
	return trimmed
}

////////////////////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////////////////////

// Parse decodes review JSON.
func Parse(raw string) (CVReview, error) {
	var review CVReview
	if err := json.Unmarshal([]byte(llm.CleanJSON(raw)), &review); err != nil {
		return CVReview{}, fmt.Errorf("failed to decode review: %w", err)
	}
	return review, nil
}

// ExtractedSkills returns the skills the review found in the CV, the input
// of the skill-gap page.
func (c CVReview) ExtractedSkills() []string {
	if c.Skills == nil {
		return []string{}
	}
	return c.Skills
}
