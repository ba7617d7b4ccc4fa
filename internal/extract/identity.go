package extract

import (
	"regexp"
	"strings"

	"github.com/lukas/bewerberprofil/internal/types"
)

// Identity holds the resolved identity fields, each possibly empty
type Identity struct {
	Name  string
	Email string
	Phone string
}

// phoneSeparators strips the separator characters tolerated inside a
// phone-shaped entity before the digit-run check.
var phoneSeparators = regexp.MustCompile(`[-\s()]`)

// ResolveIdentity iterates recognizer entities once, in order. Name comes
// from the first person-tagged entity, email from the first misc entity
// containing "@", phone from the first misc entity passing the phone-shape
// heuristic. Each field is sticky: once set it is never overwritten by a
// later candidate of the same kind.
func ResolveIdentity(entities []types.Entity) Identity {
	id := Identity{}

	for _, entity := range entities {
		switch {
		case entity.Category == types.CategoryPerson && id.Name == "":
			id.Name = entity.Text
		case entity.Category == types.CategoryMisc && strings.Contains(entity.Text, "@") && id.Email == "":
			id.Email = entity.Text
		case entity.Category == types.CategoryMisc && looksLikePhoneNumber(entity.Text) && id.Phone == "":
			id.Phone = entity.Text
		}
	}

	return id
}

// looksLikePhoneNumber applies the phone-shape heuristic: after stripping
// separators the run must be 7-15 characters long and at least 70% digits.
func looksLikePhoneNumber(text string) bool {
	clean := phoneSeparators.ReplaceAllString(text, "")
	if len(clean) < 7 || len(clean) > 15 {
		return false
	}
	digits := 0
	for _, r := range clean {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return float64(digits) >= float64(len(clean))*0.7
}
