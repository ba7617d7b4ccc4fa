package extract

import (
	"context"
	"unicode/utf8"
)

// Summarization bounds and the localized fallback text returned on any
// capability failure.
const (
	// summaryInputLimit bounds the text handed to the capability; model
	// inputs beyond this add latency without improving the synopsis.
	summaryInputLimit = 1024

	// DefaultSummaryMaxLength is the default maximum synopsis length
	DefaultSummaryMaxLength = 150
	// DefaultSummaryMinLength is the default minimum synopsis length
	DefaultSummaryMinLength = 40

	// SummaryFallback replaces the synopsis when summarization fails
	SummaryFallback = "Zusammenfassung konnte nicht erstellt werden."
)

// Summarizer is the external text-summarization capability
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Summarize truncates the input to a bounded prefix and delegates to the
// capability. The limit counts characters, not bytes, so a multi-byte rune
// at the boundary is never split. Any capability error is absorbed and
// replaced by the fixed fallback string; summarization failure is never
// fatal to the profile.
func Summarize(ctx context.Context, s Summarizer, text string, maxLength, minLength int) string {
	if utf8.RuneCountInString(text) > summaryInputLimit {
		text = string([]rune(text)[:summaryInputLimit])
	}

	summary, err := s.Summarize(ctx, text, maxLength, minLength)
	if err != nil {
		return SummaryFallback
	}
	return summary
}
