package extract

import "github.com/lukas/bewerberprofil/internal/types"

// ExtractEducation runs a full pass over all blocks of the raw text and
// returns education entries in source order. Unlike the experience rule,
// every block carrying an education cue yields an entry: the period is left
// empty when no years-only date range matches, and the institution field is
// never populated by pattern matching.
func ExtractEducation(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	for _, block := range Segment(text) {
		if !IsEducationBlock(block) {
			continue
		}
		period, _ := matchEducationDate(block)
		entries = append(entries, types.EducationEntry{
			Period:      period,
			Description: block,
		})
	}

	return entries
}
