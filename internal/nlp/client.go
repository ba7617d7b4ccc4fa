package nlp

import (
	"context"
	"sync"

	"github.com/lukas/bewerberprofil/internal/types"
)

// Recognizer is the entity-recognition capability
type Recognizer interface {
	// Recognize returns tagged spans for the text. Implementations must be
	// safe for concurrent use by multiple in-flight extraction calls.
	Recognize(ctx context.Context, text string) ([]types.Entity, error)
}

// Summarizer is the text-summarization capability
type Summarizer interface {
	// Summarize returns a synopsis bounded by the given lengths
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Client combines both capabilities behind one handle
type Client interface {
	Recognizer
	Summarizer
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new capability client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderProse:
		return NewProseClient(), nil
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

var (
	defaultOnce   sync.Once
	defaultClient Client
	defaultErr    error
)

// Default returns the process-wide capability client, creating it on first
// use. Initialization is idempotent under concurrent first use; every caller
// observes the same client (or the same construction error). Callers that
// want an owned client should use NewClient instead.
func Default(ctx context.Context, config *Config, apiKey string) (Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = NewClient(ctx, config, apiKey)
	})
	return defaultClient, defaultErr
}
