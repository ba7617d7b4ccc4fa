package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyProfile(t *testing.T) {
	p := EmptyProfile()

	assert.Equal(t, "€", p.HourlyRate, "hourly rate keeps the currency placeholder")
	assert.Empty(t, p.JobTitle)
	assert.Empty(t, p.Name)
	assert.NotNil(t, p.WorkExperience)
	assert.Len(t, p.WorkExperience, 0)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.ITSkills)
	assert.NotNil(t, p.TechnicalSkills)
	assert.NotNil(t, p.LanguageSkills)
	assert.True(t, p.IsEmpty())
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CandidateProfile)
		isEmpty bool
	}{
		{"fresh empty profile", func(p *CandidateProfile) {}, true},
		{"name set", func(p *CandidateProfile) { p.Name = "Max Mustermann" }, false},
		{"experience entry", func(p *CandidateProfile) {
			p.WorkExperience = append(p.WorkExperience, ExperienceEntry{Period: "2019 - 2021"})
		}, false},
		{"summary set", func(p *CandidateProfile) { p.Summary = "Zusammenfassung" }, false},
		{"language skill", func(p *CandidateProfile) { p.LanguageSkills = []string{"Deutsch"} }, false},
		{"header defaults only", func(p *CandidateProfile) {
			p.JobTitle = "SAP Meister/Techniker"
			p.StartDate = "01.04.2025"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EmptyProfile()
			tt.mutate(p)
			assert.Equal(t, tt.isEmpty, p.IsEmpty())
		})
	}
}

func TestCandidateProfileJSONFieldNames(t *testing.T) {
	p := EmptyProfile()
	p.ITSkills = []string{"SAP"}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	// Field names follow the German template
	assert.Contains(t, m, "einkaufskurzprofil")
	assert.Contains(t, m, "stundenverrechnungssatz")
	assert.Contains(t, m, "berufserfahrung")
	assert.Contains(t, m, "ausbildung")
	assert.Contains(t, m, "edv_kenntnisse")
	assert.Contains(t, m, "sonstige_techniken")
	assert.Contains(t, m, "sprachkenntnisse")
	assert.Contains(t, m, "zusaetzliche_bemerkungen")
}
