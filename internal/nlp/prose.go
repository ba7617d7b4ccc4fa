package nlp

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jdkato/prose/v2"

	"github.com/lukas/bewerberprofil/internal/types"
)

// ErrNoSummarizer is returned by providers that offer no summarization
// capability; the extraction adapter absorbs it into the fallback synopsis.
var ErrNoSummarizer = errors.New("provider has no summarization capability")

// Contact-shaped tokens the statistical model does not tag. They are
// supplemented as MISC entities so identity resolution works offline.
var (
	proseEmailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	prosePhonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-\s]?)?(?:\d[-\s()]?){7,14}\d`)
)

// ProseClient implements Client with a local statistical model. It needs no
// API key or network access; summarization is not available.
type ProseClient struct{}

// NewProseClient creates a new local capability client
func NewProseClient() *ProseClient {
	return &ProseClient{}
}

// Recognize tags entity spans with the local model and supplements
// email- and phone-shaped spans as MISC entities.
func (c *ProseClient) Recognize(_ context.Context, text string) ([]types.Entity, error) {
	entities := []types.Entity{}
	if text == "" {
		return entities, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze document: %w", err)
	}

	for _, ent := range doc.Entities() {
		entities = append(entities, types.Entity{
			Text:     ent.Text,
			Category: proseLabelCategory(ent.Label),
		})
	}

	for _, email := range proseEmailPattern.FindAllString(text, -1) {
		entities = append(entities, types.Entity{Text: email, Category: types.CategoryMisc})
	}
	for _, phone := range prosePhonePattern.FindAllString(text, -1) {
		entities = append(entities, types.Entity{Text: phone, Category: types.CategoryMisc})
	}

	return entities, nil
}

// Summarize always fails; the local model cannot summarize
func (c *ProseClient) Summarize(_ context.Context, _ string, _, _ int) (string, error) {
	return "", ErrNoSummarizer
}

// Close is a no-op for the local client
func (c *ProseClient) Close() error {
	return nil
}

// proseLabelCategory maps prose labels onto the coarse tag set
func proseLabelCategory(label string) string {
	switch label {
	case "PERSON":
		return types.CategoryPerson
	case "GPE":
		return types.CategoryLocation
	default:
		return types.CategoryMisc
	}
}
