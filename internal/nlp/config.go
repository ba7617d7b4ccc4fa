// Package nlp provides the external NLP capabilities consumed by the
// extraction pipeline: entity recognition and text summarization. This
// package enables switching between a remote Gemini-backed provider and a
// local prose-backed provider.
package nlp

// Provider represents an NLP capability provider
type Provider string

// Provider constants define supported capability providers
const (
	// ProviderGemini backs both capabilities with Google Gemini
	ProviderGemini Provider = "gemini"
	// ProviderProse backs recognition with a local model; it offers no
	// summarizer, so summaries degrade to the fixed fallback text
	ProviderProse Provider = "prose"
)

// Config holds the capability configuration for the application
type Config struct {
	Provider           Provider
	RecognitionModel   string
	SummarizationModel string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:           ProviderGemini,
		RecognitionModel:   "gemini-2.5-flash-lite",
		SummarizationModel: "gemini-2.5-flash-lite",
	}
}
