package extract

import "github.com/lukas/bewerberprofil/internal/types"

// ExtractExperience runs a full pass over all blocks of the raw text and
// returns work-experience entries in source order. A block yields an entry
// only when it carries an experience cue AND a date-range match AND an
// organization match; blocks failing any condition are skipped silently.
func ExtractExperience(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	for _, block := range Segment(text) {
		if !IsExperienceBlock(block) {
			continue
		}
		period, hasDate := matchDateRange(block)
		company, hasCompany := matchOrganization(block)
		if !hasDate || !hasCompany {
			continue
		}
		entries = append(entries, types.ExperienceEntry{
			Period:      period,
			Company:     company,
			Description: block,
		})
	}

	return entries
}
