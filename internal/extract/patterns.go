package extract

import (
	"fmt"
	"regexp"
)

// Compiled extraction patterns. All matching is first-match-wins with no
// error on miss; résumé formatting is too irregular for anything stricter.
var (
	// dateRangePattern matches "D/YYYY - D/YYYY" style ranges; the right
	// side also accepts the open-ended markers "dato" and "heute". Both
	// hyphen and en-dash separate the sides.
	dateRangePattern = regexp.MustCompile(`(\d{1,2}/\d{4}|\d{4})\s*[-–]\s*(\d{1,2}/\d{4}|\d{4}|dato|heute)`)

	// educationDatePattern is the stricter education variant: 4-digit
	// years only, no month/year form.
	educationDatePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|dato|heute)`)

	// organizationPattern anchors on a capitalized word run ending in a
	// legal company suffix.
	organizationPattern = regexp.MustCompile(`([A-ZÄÖÜ][a-zäöüß\s&,.-]+(?:AG|GmbH|KG|e\.V\.|Inc\.|Ltd\.|Co\.))`)

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// phonePatterns are tried in fixed priority order: extension-separated
	// German forms first, then compact forms.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+49[-\s]?\d{3}[-\s]?\d{3}[-\s]?\d{4,5}`),
		regexp.MustCompile(`0\d{3}[-\s]?\d{3}[-\s]?\d{4,5}`),
		regexp.MustCompile(`\+49[-\s]?\d{10,11}`),
		regexp.MustCompile(`0\d{9,11}`),
	}
)

// matchDateRange returns the first date-range in the block formatted as
// "left - right". The second return value is false when no range matches.
func matchDateRange(block string) (string, bool) {
	m := dateRangePattern.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s - %s", m[1], m[2]), true
}

// matchEducationDate returns the first years-only date range in the block
func matchEducationDate(block string) (string, bool) {
	m := educationDatePattern.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s - %s", m[1], m[2]), true
}

// matchOrganization returns the first legal-suffix organization name in the
// block
func matchOrganization(block string) (string, bool) {
	m := organizationPattern.FindString(block)
	if m == "" {
		return "", false
	}
	return m, true
}
