package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukas/bewerberprofil/internal/extract"
	"github.com/lukas/bewerberprofil/internal/nlp"
	"github.com/lukas/bewerberprofil/internal/observability"
	"github.com/lukas/bewerberprofil/internal/textsource"
	"github.com/lukas/bewerberprofil/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from a résumé file",
	Long:  "Extract a structured candidate profile JSON from a résumé file (.txt, .pdf or .docx) without rendering it into the document layout.",
	RunE:  runExtract,
}

var (
	extractInputFile      string
	extractOutputFile     string
	extractProvider       string
	extractAPIKey         string
	extractSummaryMax     int
	extractSummaryMin     int
	extractWordBoundaries bool
	extractVerbose        bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to résumé file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "gemini", "Capability provider: gemini or prose")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().IntVar(&extractSummaryMax, "summary-max", 0, "Maximum summary length in characters")
	extractCmd.Flags().IntVar(&extractSummaryMin, "summary-min", 0, "Minimum summary length in characters")
	extractCmd.Flags().BoolVar(&extractWordBoundaries, "word-boundaries", false, "Match skill vocabulary on word boundaries instead of substrings")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if extractProvider == "gemini" && apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	rawText, err := textsource.FromFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read résumé: %w", err)
	}

	// The process-wide client; closed on process exit, not per command
	client, err := nlp.Default(ctx, &nlp.Config{Provider: nlp.Provider(extractProvider)}, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create capability client: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)

	assembler := extract.NewAssembler(client, client)
	assembler.Skills = extract.Matcher{WordBoundaries: extractWordBoundaries}
	assembler.SummaryMaxLength = extractSummaryMax
	assembler.SummaryMinLength = extractSummaryMin
	if extractVerbose {
		assembler.OnEntities = func(entities []types.Entity) {
			printer.PrintEntities(entities)
		}
	}

	profile, err := assembler.Assemble(ctx, rawText)
	if err != nil {
		return fmt.Errorf("failed to extract profile: %w", err)
	}

	if profile.Email == "" || profile.Phone == "" {
		contact := extract.ExtractContact(rawText)
		if profile.Email == "" {
			profile.Email = contact.Email
		}
		if profile.Phone == "" {
			profile.Phone = contact.Phone
		}
	}

	if extractVerbose {
		printer.PrintProfile(profile)
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully extracted candidate profile\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)

	return nil
}
