package extract

import "strings"

// Keyword cue sets for block classification. Matching is case-insensitive
// substring containment. The experience and education checks are independent:
// a single block may satisfy both and be claimed by both extraction passes.
var (
	experienceCues = []string{"erfahrung", "tätigkeit", "position", "stelle"}
	educationCues  = []string{"ausbildung", "studium", "weiterbildung", "abschluss", "universität", "hochschule", "schule"}
)

// IsExperienceBlock reports whether the block contains an experience cue
func IsExperienceBlock(block string) bool {
	return containsAnyCue(block, experienceCues)
}

// IsEducationBlock reports whether the block contains an education cue
func IsEducationBlock(block string) bool {
	return containsAnyCue(block, educationCues)
}

func containsAnyCue(block string, cues []string) bool {
	lower := strings.ToLower(block)
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
