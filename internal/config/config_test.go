package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"provider": "prose",
			"default_job_title": "Projektleiter",
			"summary_max_length": 200
		}`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "prose", cfg.Provider)
		assert.Equal(t, "Projektleiter", cfg.DefaultJobTitle)
		assert.Equal(t, 200, cfg.SummaryMaxLength)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "fehlt.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{provider:`), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero config is valid", Config{}, false},
		{"defaults are valid", DefaultConfig(), false},
		{"unknown provider", Config{Provider: "openai"}, true},
		{"prose provider", Config{Provider: "prose"}, false},
		{"min exceeds max", Config{SummaryMaxLength: 40, SummaryMinLength: 150}, true},
		{"negative summary length", Config{SummaryMaxLength: -1}, true},
		{"missing docx template", Config{DocxTemplate: "/nicht/vorhanden.docx"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := DefaultConfig()

	t.Run("empty config takes all defaults", func(t *testing.T) {
		cfg := Config{}

		merged := cfg.MergeWithDefaults(defaults)

		assert.Equal(t, defaults, merged)
	})

	t.Run("set fields win over defaults", func(t *testing.T) {
		cfg := Config{
			Provider:         "prose",
			DefaultJobTitle:  "Projektleiter",
			SummaryMaxLength: 200,
		}

		merged := cfg.MergeWithDefaults(defaults)

		assert.Equal(t, "prose", merged.Provider)
		assert.Equal(t, "Projektleiter", merged.DefaultJobTitle)
		assert.Equal(t, 200, merged.SummaryMaxLength)
		assert.Equal(t, defaults.DefaultEKP, merged.DefaultEKP)
		assert.Equal(t, defaults.OutputDir, merged.OutputDir)
	})
}
