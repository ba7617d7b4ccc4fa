package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			input:    "   \n\t  \n ",
			expected: []string{},
		},
		{
			name:     "single block",
			input:    "Berufserfahrung bei der Beispiel GmbH",
			expected: []string{"Berufserfahrung bei der Beispiel GmbH"},
		},
		{
			name:     "two blocks on blank line",
			input:    "Erster Abschnitt\n\nZweiter Abschnitt",
			expected: []string{"Erster Abschnitt", "Zweiter Abschnitt"},
		},
		{
			name:     "blank line with interior whitespace",
			input:    "Erster Abschnitt\n   \t\nZweiter Abschnitt",
			expected: []string{"Erster Abschnitt", "Zweiter Abschnitt"},
		},
		{
			name:     "single newline does not split",
			input:    "Zeile eins\nZeile zwei",
			expected: []string{"Zeile eins\nZeile zwei"},
		},
		{
			name:     "blocks are trimmed and empties dropped",
			input:    "  Abschnitt A  \n\n\n\n  Abschnitt B\t\n\n   ",
			expected: []string{"Abschnitt A", "Abschnitt B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segment(tt.input))
		})
	}
}

func TestSegmentIsRestartable(t *testing.T) {
	input := "Abschnitt A\n\nAbschnitt B"

	first := Segment(input)
	second := Segment(input)

	assert.Equal(t, first, second, "repeated segmentation must be stable")
}
