package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lukas/bewerberprofil/internal/schemas"
	"github.com/lukas/bewerberprofil/internal/types"
)

// recognizePrompt asks for coarse entity tagging as a plain JSON array.
// Categories follow the classic CoNLL tag set the downstream identity
// resolver expects.
const recognizePrompt = `Extract named entities from the following résumé text.

Return ONLY a JSON array. Each element must be an object with exactly two
string fields: "text" (the entity as it appears in the source) and
"category" (one of "PER" for person names, "ORG" for organizations, "LOC"
for locations, "MISC" for everything else, including email addresses and
phone numbers). Preserve source order. Return [] if nothing is found.

Résumé text:
%s`

// summarizePrompt asks for a bounded synopsis in the source language
const summarizePrompt = `Summarize the following résumé text in its own
language as a single paragraph between %d and %d characters. Return only the
summary text with no preamble.

Résumé text:
%s`

// GeminiClient implements Client using Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini-backed capability client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	cfg := *config
	if cfg.RecognitionModel == "" {
		cfg.RecognitionModel = DefaultConfig().RecognitionModel
	}
	if cfg.SummarizationModel == "" {
		cfg.SummarizationModel = DefaultConfig().SummarizationModel
	}

	return &GeminiClient{
		client: client,
		config: &cfg,
	}, nil
}

// Recognize extracts tagged entity spans from the text. The model response
// is cleaned of markdown fences and validated against the entity-list schema
// before decoding; any model or validation failure is returned to the caller
// (recognition is a hard dependency of the pipeline).
func (c *GeminiClient) Recognize(ctx context.Context, text string) ([]types.Entity, error) {
	model := c.client.GenerativeModel(c.config.RecognitionModel)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(recognizePrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate entity content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}
	raw = cleanJSONBlock(raw)

	if err := schemas.ValidateEntities(raw); err != nil {
		return nil, fmt.Errorf("recognizer returned malformed entities: %w", err)
	}

	var entities []types.Entity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity JSON: %w", err)
	}

	for i := range entities {
		entities[i].Category = normalizeCategory(entities[i].Category)
	}
	return entities, nil
}

// Summarize produces a synopsis bounded by the given lengths
func (c *GeminiClient) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	model := c.client.GenerativeModel(c.config.SummarizationModel)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(summarizePrompt, minLength, maxLength, text)))
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	summary, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// normalizeCategory maps provider tag variants onto the coarse tag set
func normalizeCategory(category string) string {
	switch strings.ToUpper(strings.TrimSpace(category)) {
	case "PER", "PERSON":
		return types.CategoryPerson
	case "ORG", "ORGANIZATION":
		return types.CategoryOrganization
	case "LOC", "GPE", "LOCATION":
		return types.CategoryLocation
	default:
		return types.CategoryMisc
	}
}
