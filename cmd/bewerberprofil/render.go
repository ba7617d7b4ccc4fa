package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukas/bewerberprofil/internal/config"
	"github.com/lukas/bewerberprofil/internal/render"
	"github.com/lukas/bewerberprofil/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a candidate profile JSON into the agency document layout",
	Long:  "Render a previously extracted candidate profile JSON into the fixed German document layout, as markdown text and optionally as a .docx file from a placeholder template.",
	RunE:  runRender,
}

var (
	renderInputFile    string
	renderOutputFile   string
	renderDocxTemplate string
	renderDocxOut      string
	renderJobTitle     string
	renderEKP          string
	renderHourlyRate   string
	renderStartDate    string
	renderReferences   string
	renderCertificates string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to candidate profile JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output markdown file (default: stdout)")
	renderCmd.Flags().StringVar(&renderDocxTemplate, "docx-template", "", "Path to a .docx template with placeholders to fill")
	renderCmd.Flags().StringVar(&renderDocxOut, "docx-out", "", "Path to the generated .docx file (required with --docx-template)")
	renderCmd.Flags().StringVar(&renderJobTitle, "job-title", "", "Job posting title for the profile header")
	renderCmd.Flags().StringVar(&renderEKP, "ekp", "", "Purchasing short profile (EKP) header value")
	renderCmd.Flags().StringVar(&renderHourlyRate, "svs", "", "Hourly billing rate (SVS) header value")
	renderCmd.Flags().StringVar(&renderStartDate, "start-date", "", "Earliest start date header value")
	renderCmd.Flags().StringVar(&renderReferences, "references", "", "References appended to the remarks section")
	renderCmd.Flags().StringVar(&renderCertificates, "certificates", "", "Certificates appended to the remarks section")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderDocxTemplate != "" && renderDocxOut == "" {
		return fmt.Errorf("--docx-out is required when --docx-template is set")
	}

	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read profile JSON: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	defaults := config.DefaultConfig()
	render.ApplyDefaults(&profile, render.Defaults{
		JobTitle:   firstNonEmpty(renderJobTitle, defaults.DefaultJobTitle),
		EKP:        firstNonEmpty(renderEKP, defaults.DefaultEKP),
		HourlyRate: firstNonEmpty(renderHourlyRate, defaults.DefaultHourlyRate),
		StartDate:  firstNonEmpty(renderStartDate, defaults.DefaultStartDate),
	})
	if renderReferences != "" || renderCertificates != "" {
		render.AppendAdditionalInfo(&profile, renderReferences, renderCertificates)
	}

	rendered, err := render.RenderText(&profile)
	if err != nil {
		return fmt.Errorf("failed to render profile: %w", err)
	}

	if renderOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, rendered)
	} else {
		if err := os.WriteFile(renderOutputFile, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	}

	if renderDocxTemplate != "" {
		if err := render.RenderDocx(&profile, renderDocxTemplate, renderDocxOut); err != nil {
			return fmt.Errorf("failed to render docx: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderDocxOut)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
