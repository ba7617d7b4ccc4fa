package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukas/bewerberprofil/internal/types"
)

const testResume = `Max Mustermann
max.mustermann@example.com
0176 1234567

Berufserfahrung

01/2019 - heute Tätigkeit als Techniker bei der Bahntechnik GmbH.
Wartung und Dokumentation im Schienenfahrzeugbau mit SAP.

Ausbildung

2015 - 2019 Studium an der Hochschule München.

Kenntnisse: Deutsch, Englisch, MS-Excel, Hydraulik
`

func TestExtractCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         []string
		errorString string
	}{
		{
			name:        "Missing --in flag",
			args:        []string{"extract"},
			errorString: "required",
		},
		{
			name:        "Missing API key for gemini",
			args:        []string{"extract", "--in", "lebenslauf.txt"},
			env:         []string{"GEMINI_API_KEY="},
			errorString: "API key is required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = append(os.Environ(), tt.env...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestExtractCommand_ProseProvider(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "lebenslauf.txt")
	outputPath := filepath.Join(tmpDir, "profil.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(testResume), 0o644))

	cmd := exec.Command(binaryPath, "extract",
		"--in", inputPath,
		"--out", outputPath,
		"--provider", "prose",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(data, &profile))

	assert.Equal(t, "max.mustermann@example.com", profile.Email)
	assert.Contains(t, profile.ITSkills, "SAP")
	assert.Contains(t, profile.LanguageSkills, "Deutsch")
	assert.Len(t, profile.WorkExperience, 1)
}

func TestExtractCommand_UnreadableInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract",
		"--in", filepath.Join(t.TempDir(), "missing.txt"),
		"--provider", "prose",
	)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read résumé")
}
