package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         []string
		errorString string
	}{
		{
			name:        "Missing --in flag",
			args:        []string{"run", "--provider", "prose"},
			errorString: "--in is required",
		},
		{
			name:        "Missing API key for gemini",
			args:        []string{"run", "--in", "lebenslauf.txt", "--provider", "gemini"},
			env:         []string{"GEMINI_API_KEY="},
			errorString: "GEMINI_API_KEY",
		},
		{
			name:        "Invalid provider in config rejected",
			args:        []string{"run", "--in", "lebenslauf.txt", "--config", "testdata/invalid_provider.json"},
			errorString: "config error",
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

func TestRunCommand_ProseEndToEnd(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "lebenslauf.txt")
	outputDir := filepath.Join(tmpDir, "output")
	require.NoError(t, os.WriteFile(inputPath, []byte(testResume), 0o644))

	cmd := exec.Command(binaryPath, "run",
		"--in", inputPath,
		"--provider", "prose",
		"--out-dir", outputDir,
		"--job-title", "SAP Meister/Techniker",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, string(output), "Step 1/5")
	assert.Contains(t, string(output), "Done!")

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(outputDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "SAP Meister/Techniker")
	assert.Contains(t, string(content), "max.mustermann@example.com")
}
