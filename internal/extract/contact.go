package extract

// ContactInfo holds contact fields scanned from raw text
type ContactInfo struct {
	Email string
	Phone string
}

// ExtractContact scans the entire raw text once for contact information.
// The first email match wins. The phone patterns are tried in fixed priority
// order; the first pattern producing any match contributes its first
// occurrence and later patterns are not consulted. Missing fields stay empty.
func ExtractContact(text string) ContactInfo {
	info := ContactInfo{}

	info.Email = emailPattern.FindString(text)

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			info.Phone = phone
			break
		}
	}

	return info
}
