package render

import (
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/lukas/bewerberprofil/internal/types"
)

// RenderDocx fills a DOCX template by placeholder replacement and writes the
// result to outPath. The template carries the fixed German layout with
// placeholders like {{name}} and {{berufserfahrung}} in its cells.
func RenderDocx(profile *types.CandidateProfile, templatePath, outPath string) error {
	doc, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return &TemplateError{
			Message: fmt.Sprintf("failed to open docx template %s", templatePath),
			Cause:   err,
		}
	}
	defer func() { _ = doc.Close() }()

	editable := doc.Editable()
	for placeholder, value := range placeholderValues(profile) {
		if err := editable.Replace(placeholder, value, -1); err != nil {
			return &RenderError{
				Message: fmt.Sprintf("failed to replace %s", placeholder),
				Cause:   err,
			}
		}
	}

	if err := editable.WriteToFile(outPath); err != nil {
		return &RenderError{
			Message: fmt.Sprintf("failed to write %s", outPath),
			Cause:   err,
		}
	}
	return nil
}

// placeholderValues maps template placeholders to their rendered content
func placeholderValues(profile *types.CandidateProfile) map[string]string {
	return map[string]string{
		"{{job_title}}":          profile.JobTitle,
		"{{ekp}}":                profile.EKP,
		"{{svs}}":                profile.HourlyRate,
		"{{starttermin}}":        profile.StartDate,
		"{{name}}":               profile.Name,
		"{{email}}":              profile.Email,
		"{{telefon}}":            profile.Phone,
		"{{berufserfahrung}}":    renderExperience(profile.WorkExperience),
		"{{ausbildung}}":         renderEducation(profile.Education),
		"{{edv_kenntnisse}}":     renderSkills(profile.ITSkills),
		"{{sonstige_techniken}}": renderSkills(profile.TechnicalSkills),
		"{{sprachkenntnisse}}":   renderSkills(profile.LanguageSkills),
		"{{zusammenfassung}}":    profile.Summary,
		"{{bemerkungen}}":        profile.Remarks,
	}
}

func renderExperience(entries []types.ExperienceEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s | %s\n%s", e.Period, e.Company, e.Description))
	}
	return strings.Join(lines, "\n\n")
}

func renderEducation(entries []types.EducationEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s | %s\n%s", e.Period, e.Institution, e.Description))
	}
	return strings.Join(lines, "\n\n")
}

func renderSkills(skills []string) string {
	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		lines = append(lines, fmt.Sprintf("%s: %s", s, SkillLevel))
	}
	return strings.Join(lines, "\n")
}
