package render

import (
	"fmt"
	"strings"

	"github.com/lukas/bewerberprofil/internal/types"
)

// Defaults holds the fallback values for the four header fields the
// extraction core leaves as placeholders.
type Defaults struct {
	JobTitle   string
	EKP        string
	HourlyRate string
	StartDate  string
}

// ApplyDefaults fills empty header fields from the defaults. Non-empty
// fields are never overwritten; defaulting is a renderer concern and runs
// after extraction.
func ApplyDefaults(profile *types.CandidateProfile, defaults Defaults) {
	if profile.JobTitle == "" {
		profile.JobTitle = defaults.JobTitle
	}
	if profile.EKP == "" {
		profile.EKP = defaults.EKP
	}
	if profile.HourlyRate == "" {
		profile.HourlyRate = defaults.HourlyRate
	}
	if profile.StartDate == "" {
		profile.StartDate = defaults.StartDate
	}
}

// AppendAdditionalInfo appends caller-supplied references and certificates
// text to the profile remarks. Empty inputs leave the remarks untouched.
func AppendAdditionalInfo(profile *types.CandidateProfile, references, certificates string) {
	if references == "" && certificates == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(profile.Remarks)
	sb.WriteString("\n\nZusätzliche Informationen:\n")
	if references != "" {
		sb.WriteString(fmt.Sprintf("- Referenzen: %s\n", references))
	}
	if certificates != "" {
		sb.WriteString(fmt.Sprintf("- Zertifikate: %s\n", certificates))
	}
	profile.Remarks = sb.String()
}
