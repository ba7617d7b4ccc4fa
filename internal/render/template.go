// Package render turns a CandidateProfile into the fixed German
// staffing-agency document layout, as formatted text or as a filled DOCX
// template. It also owns the defaulting rules for the header fields the
// extraction core leaves empty.
package render

import (
	"strings"
	"text/template"

	"github.com/lukas/bewerberprofil/internal/types"
)

// SkillLevel is the fixed proficiency printed for every matched skill
const SkillLevel = "Advanced"

// profileTemplate is the text rendition of the German template
const profileTemplate = `**{{ if .JobTitle }}{{ .JobTitle }}{{ else }}Titel des Job Postings{{ end }}**

| | **angefragt** | **falls abweichend** |
|---|---|---|
| **Einkaufskurzprofil (EKP)** | | {{ .EKP }} |
| **Stundenverrechnungssatz (SVS)** | **{{ .HourlyRate }}** | **€** |
| **Möglicher Starttermin** | {{ .StartDate }} | |

**Persönliche Daten des Zeitarbeitnehmers**

| Name | {{ .Name }} |
| E-Mail | {{ .Email }} |
| Telefon | {{ .Phone }} |

**Berufserfahrung:**

{{ range .WorkExperience }}**{{ .Period }}** | {{ .Company }}
{{ .Description }}

{{ end }}**Ausbildung:**

{{ range .Education }}**{{ .Period }}** | {{ .Institution }}
{{ .Description }}

{{ end }}**Kompetenzen:**

EDV-Kenntnisse:

{{ range .ITSkills }}| {{ . }}: | {{ $.Level }} |
{{ end }}
Sonstige Techniken:

{{ range .TechnicalSkills }}| {{ . }}: | {{ $.Level }} |
{{ end }}
Sprachkenntnisse:

{{ range .LanguageSkills }}| {{ . }}: | {{ $.Level }} |
{{ end }}
**Zusammenfassung**

{{ .Summary }}

**Zusätzliche Bemerkungen**

{{ .Remarks }}
`

// templateData flattens the profile with the fixed skill level for the
// template
type templateData struct {
	*types.CandidateProfile
	Level string
}

var profileTmpl = template.Must(template.New("profile").Parse(profileTemplate))

// RenderText renders the profile into the fixed German text layout
func RenderText(profile *types.CandidateProfile) (string, error) {
	var sb strings.Builder
	err := profileTmpl.Execute(&sb, templateData{CandidateProfile: profile, Level: SkillLevel})
	if err != nil {
		return "", &RenderError{
			Message: "failed to execute profile template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}
