package extract

import (
	"regexp"
	"strings"
)

// Fixed skill vocabularies for the three template categories. Result sets
// follow vocabulary order; no free-text skill is ever invented.
var (
	itSkillVocabulary = []string{
		"MS-Word", "MS-Excel", "MS-Outlook", "SAP", "Python", "Java",
		"JavaScript", "SQL", "HTML", "CSS", "PowerPoint", "Access",
	}

	technicalSkillVocabulary = []string{
		"Schienenfahrzeugbau", "Dokumentation", "Koordination",
		"Projektmanagement", "Qualitätssicherung", "Mechanik",
		"Hydraulik", "Pneumatik", "Elektrik",
	}

	languageVocabulary = []string{
		"Deutsch", "Englisch", "Französisch", "Spanisch", "Italienisch",
	}
)

// SkillMatches holds the matched terms per template category
type SkillMatches struct {
	IT        []string
	Technical []string
	Languages []string
}

// Matcher checks vocabulary terms against résumé text. The zero value uses
// plain case-insensitive substring containment, which also matches terms
// inside longer words ("SAP" inside "SAPPHIRE"). Set WordBoundaries for the
// stricter boundary-aware variant.
type Matcher struct {
	WordBoundaries bool
}

// Match tests every vocabulary term against the full text and returns the
// matched terms per category. Each term appears at most once regardless of
// how often the text mentions it.
func (m Matcher) Match(text string) SkillMatches {
	return SkillMatches{
		IT:        m.matchVocabulary(text, itSkillVocabulary),
		Technical: m.matchVocabulary(text, technicalSkillVocabulary),
		Languages: m.matchVocabulary(text, languageVocabulary),
	}
}

func (m Matcher) matchVocabulary(text string, vocabulary []string) []string {
	matched := []string{}
	lower := strings.ToLower(text)
	for _, term := range vocabulary {
		if m.contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}

func (m Matcher) contains(lowerText, lowerTerm string) bool {
	if !m.WordBoundaries {
		return strings.Contains(lowerText, lowerTerm)
	}
	pattern := regexp.MustCompile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(lowerTerm) + `($|[^\p{L}\p{N}])`)
	return pattern.MatchString(lowerText)
}

// MatchSkills matches all three vocabularies with the default substring
// containment behavior.
func MatchSkills(text string) SkillMatches {
	return Matcher{}.Match(text)
}
