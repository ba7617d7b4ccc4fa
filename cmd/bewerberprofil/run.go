package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukas/bewerberprofil/internal/config"
	"github.com/lukas/bewerberprofil/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full profile generation pipeline end-to-end",
	Long: `Orchestrates the entire profile generation process: reading the résumé -> entity recognition and summarization -> rule-based extraction -> assembly -> rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath     string
	runInputFile      string
	runProvider       string
	runAPIKey         string
	runJobTitle       string
	runEKP            string
	runHourlyRate     string
	runStartDate      string
	runReferences     string
	runCertificates   string
	runSummaryMax     int
	runSummaryMin     int
	runWordBoundaries bool
	runOutputDir      string
	runDocxTemplate   string
	runDatabaseURL    string
	runVerbose        bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInputFile, "in", "i", "", "Path to résumé file (.txt, .pdf or .docx)")
	runCommand.Flags().StringVar(&runProvider, "provider", "", "Capability provider: gemini or prose")
	runCommand.Flags().StringVar(&runJobTitle, "job-title", "", "Job posting title for the profile header")
	runCommand.Flags().StringVar(&runEKP, "ekp", "", "Purchasing short profile (EKP) header value")
	runCommand.Flags().StringVar(&runHourlyRate, "svs", "", "Hourly billing rate (SVS) header value")
	runCommand.Flags().StringVar(&runStartDate, "start-date", "", "Earliest start date header value")
	runCommand.Flags().StringVar(&runReferences, "references", "", "References appended to the remarks section")
	runCommand.Flags().StringVar(&runCertificates, "certificates", "", "Certificates appended to the remarks section")
	runCommand.Flags().IntVar(&runSummaryMax, "summary-max", 0, "Maximum summary length in characters")
	runCommand.Flags().IntVar(&runSummaryMin, "summary-min", 0, "Minimum summary length in characters")
	runCommand.Flags().BoolVar(&runWordBoundaries, "word-boundaries", false, "Match skill vocabulary on word boundaries instead of substrings")
	runCommand.Flags().StringVarP(&runOutputDir, "out-dir", "o", "", "Directory for generated profile documents")
	runCommand.Flags().StringVar(&runDocxTemplate, "docx-template", "", "Path to a .docx template with placeholders to fill")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.Load(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("provider") {
		cfg.Provider = runProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("job-title") {
		cfg.DefaultJobTitle = runJobTitle
	}
	if cmd.Flags().Changed("ekp") {
		cfg.DefaultEKP = runEKP
	}
	if cmd.Flags().Changed("svs") {
		cfg.DefaultHourlyRate = runHourlyRate
	}
	if cmd.Flags().Changed("start-date") {
		cfg.DefaultStartDate = runStartDate
	}
	if cmd.Flags().Changed("summary-max") {
		cfg.SummaryMaxLength = runSummaryMax
	}
	if cmd.Flags().Changed("summary-min") {
		cfg.SummaryMinLength = runSummaryMin
	}
	if cmd.Flags().Changed("word-boundaries") {
		cfg.SkillWordBoundaries = runWordBoundaries
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("docx-template") {
		cfg.DocxTemplate = runDocxTemplate
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 4: Validate required fields
	if runInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	// Step 5: API key handling (prose runs fully offline)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Provider == "gemini" && cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required for the gemini provider")
	}

	// Step 6: Database URL handling (optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		InputPath:           runInputFile,
		Provider:            cfg.Provider,
		RecognitionModel:    cfg.RecognitionModel,
		SummarizationModel:  cfg.SummarizationModel,
		APIKey:              cfg.APIKey,
		JobTitle:            cfg.DefaultJobTitle,
		EKP:                 cfg.DefaultEKP,
		HourlyRate:          cfg.DefaultHourlyRate,
		StartDate:           cfg.DefaultStartDate,
		References:          runReferences,
		Certificates:        runCertificates,
		SummaryMaxLength:    cfg.SummaryMaxLength,
		SummaryMinLength:    cfg.SummaryMinLength,
		SkillWordBoundaries: cfg.SkillWordBoundaries,
		OutputDir:           cfg.OutputDir,
		DocxTemplate:        cfg.DocxTemplate,
		DatabaseURL:         cfg.DatabaseURL,
		Verbose:             cfg.Verbose,
	}

	_, err := pipeline.Run(ctx, opts)
	return err
}
