// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Capability provider
	Provider           string `json:"provider,omitempty" validate:"omitempty,oneof=gemini prose"`
	RecognitionModel   string `json:"recognition_model,omitempty"`
	SummarizationModel string `json:"summarization_model,omitempty"`
	APIKey             string `json:"api_key,omitempty"`

	// Summary bounds
	SummaryMaxLength int `json:"summary_max_length,omitempty" validate:"gte=0"`
	SummaryMinLength int `json:"summary_min_length,omitempty" validate:"gte=0"`

	// Header defaults applied by the renderer
	DefaultJobTitle   string `json:"default_job_title,omitempty"`
	DefaultEKP        string `json:"default_ekp,omitempty"`
	DefaultHourlyRate string `json:"default_hourly_rate,omitempty"`
	DefaultStartDate  string `json:"default_start_date,omitempty"`

	// Behavior
	OutputDir           string `json:"output_dir,omitempty"`
	DocxTemplate        string `json:"docx_template,omitempty"`
	DatabaseURL         string `json:"database_url,omitempty"`
	SkillWordBoundaries bool   `json:"skill_word_boundaries,omitempty"`
	Verbose             bool   `json:"verbose,omitempty"`
}

// DefaultConfig returns the built-in defaults matching the fixed German
// template conventions.
func DefaultConfig() Config {
	return Config{
		Provider:          "gemini",
		SummaryMaxLength:  150,
		SummaryMinLength:  40,
		DefaultJobTitle:   "SAP Meister/Techniker",
		DefaultEKP:        "X|YYY|XXX|Z",
		DefaultHourlyRate: "€",
		DefaultStartDate:  "01.04.2025",
		OutputDir:         "output",
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("config error: field %s failed validation (%s)", errs[0].Field(), errs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.SummaryMaxLength > 0 && c.SummaryMinLength > c.SummaryMaxLength {
		return fmt.Errorf("config error: 'summary_min_length' must not exceed 'summary_max_length'")
	}

	if c.DocxTemplate != "" {
		if _, err := os.Stat(c.DocxTemplate); os.IsNotExist(err) {
			return fmt.Errorf("config error: docx template not found: %s", c.DocxTemplate)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values on top of the built-in
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.RecognitionModel == "" {
		result.RecognitionModel = defaults.RecognitionModel
	}
	if result.SummarizationModel == "" {
		result.SummarizationModel = defaults.SummarizationModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SummaryMaxLength == 0 {
		result.SummaryMaxLength = defaults.SummaryMaxLength
	}
	if result.SummaryMinLength == 0 {
		result.SummaryMinLength = defaults.SummaryMinLength
	}
	if result.DefaultJobTitle == "" {
		result.DefaultJobTitle = defaults.DefaultJobTitle
	}
	if result.DefaultEKP == "" {
		result.DefaultEKP = defaults.DefaultEKP
	}
	if result.DefaultHourlyRate == "" {
		result.DefaultHourlyRate = defaults.DefaultHourlyRate
	}
	if result.DefaultStartDate == "" {
		result.DefaultStartDate = defaults.DefaultStartDate
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DocxTemplate == "" {
		result.DocxTemplate = defaults.DocxTemplate
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	return result
}
