// Package extract implements the candidate-data extraction pipeline: it
// turns raw résumé text into a structured CandidateProfile through section
// segmentation, keyword classification, regex pattern extraction, vocabulary
// skill matching, and identity resolution over recognizer entities.
package extract

import (
	"regexp"
	"strings"
)

// blankLinePattern matches a whitespace run containing at least two
// consecutive line breaks, the block boundary of the source text.
var blankLinePattern = regexp.MustCompile(`\n\s*\n`)

// Segment splits raw text into contiguous blocks on blank-line boundaries.
// Blocks are trimmed; blocks that are empty after trimming are dropped.
// Empty input yields an empty slice.
func Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	parts := blankLinePattern.Split(text, -1)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		block := strings.TrimSpace(part)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}
