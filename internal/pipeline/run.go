// Package pipeline provides the high-level orchestration for the profile
// extraction process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lukas/bewerberprofil/internal/db"
	"github.com/lukas/bewerberprofil/internal/extract"
	"github.com/lukas/bewerberprofil/internal/nlp"
	"github.com/lukas/bewerberprofil/internal/observability"
	"github.com/lukas/bewerberprofil/internal/render"
	"github.com/lukas/bewerberprofil/internal/textsource"
	"github.com/lukas/bewerberprofil/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath string

	// Capability provider
	Provider           string
	RecognitionModel   string
	SummarizationModel string
	APIKey             string

	// Header values applied to the rendered profile
	JobTitle   string
	EKP        string
	HourlyRate string
	StartDate  string

	// Optional extra remarks
	References   string
	Certificates string

	SummaryMaxLength    int
	SummaryMinLength    int
	SkillWordBoundaries bool

	OutputDir    string
	DocxTemplate string
	DatabaseURL  string
	Verbose      bool
	OnProgress   ProgressCallback
}

// Result holds the outputs of a pipeline run
type Result struct {
	Profile      *types.CandidateProfile
	RenderedText string
	OutputPath   string
	DocxPath     string
	RunID        uuid.UUID
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run orchestrates the full extraction pipeline: reading the résumé,
// recognizing entities and summarizing, assembling the candidate profile
// and rendering it to the output directory.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	fmt.Printf("Step 1/5: Reading résumé from %s...\n", opts.InputPath)
	rawText, err := textsource.FromFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input failed: %w", err)
	}
	emitProgress(&opts, db.StepRawText,
		fmt.Sprintf("Read %d characters from %s", len(rawText), opts.InputPath), nil)

	if database != nil {
		runID, err = database.CreateRun(ctx, filepath.Base(opts.InputPath), opts.Provider)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveTextArtifact(ctx, runID, db.StepRawText, rawText)
		}
	}

	client, err := nlp.NewClient(ctx, &nlp.Config{
		Provider:           nlp.Provider(opts.Provider),
		RecognitionModel:   opts.RecognitionModel,
		SummarizationModel: opts.SummarizationModel,
	}, opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("initializing capability client failed: %w", err)
	}
	defer client.Close()

	fmt.Printf("Step 2/5: Extracting candidate profile...\n")
	assembler := extract.NewAssembler(client, client)
	assembler.Skills = extract.Matcher{WordBoundaries: opts.SkillWordBoundaries}
	assembler.SummaryMaxLength = opts.SummaryMaxLength
	assembler.SummaryMinLength = opts.SummaryMinLength
	assembler.OnEntities = func(entities []types.Entity) {
		if opts.Verbose {
			printer.PrintEntities(entities)
		}
		if database != nil && runID != uuid.Nil {
			_ = database.SaveEntities(ctx, runID, entities)
		}
		emitProgress(&opts, db.StepEntities,
			fmt.Sprintf("Recognized %d entities", len(entities)), entities)
	}

	profile, err := assembler.Assemble(ctx, rawText)
	if err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, "failed")
		}
		return nil, fmt.Errorf("profile extraction failed: %w", err)
	}

	// Fall back to a whole-text scan for contact details the entity pass
	// did not surface
	if profile.Email == "" || profile.Phone == "" {
		contact := extract.ExtractContact(rawText)
		if profile.Email == "" {
			profile.Email = contact.Email
		}
		if profile.Phone == "" {
			profile.Phone = contact.Phone
		}
	}

	if opts.Verbose {
		printer.PrintProfile(profile)
		printer.PrintSummary(profile.Summary)
	}

	fmt.Printf("Step 3/5: Validating profile...\n")
	if err := validateProfile(profile); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	emitProgress(&opts, db.StepProfile, "Assembled candidate profile", profile)

	render.ApplyDefaults(profile, render.Defaults{
		JobTitle:   opts.JobTitle,
		EKP:        opts.EKP,
		HourlyRate: opts.HourlyRate,
		StartDate:  opts.StartDate,
	})
	if opts.References != "" || opts.Certificates != "" {
		render.AppendAdditionalInfo(profile, opts.References, opts.Certificates)
	}

	if database != nil && runID != uuid.Nil {
		_ = database.SaveProfile(ctx, runID, profile)
	}

	fmt.Printf("Step 4/5: Rendering profile document...\n")
	rendered, err := render.RenderText(profile)
	if err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, "failed")
		}
		return nil, fmt.Errorf("rendering profile failed: %w", err)
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepRenderedProfile, rendered)
	}

	fmt.Printf("Step 5/5: Writing output files...\n")
	if err := render.EnsureOutputDir(opts.OutputDir); err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, "failed")
		}
		return nil, fmt.Errorf("creating output directory failed: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, render.UniqueFilename("bewerberprofil", ".md"))
	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, "failed")
		}
		return nil, fmt.Errorf("writing output file failed: %w", err)
	}

	docxPath := ""
	if opts.DocxTemplate != "" {
		docxPath = filepath.Join(opts.OutputDir, render.UniqueFilename("bewerberprofil", ".docx"))
		if err := render.RenderDocx(profile, opts.DocxTemplate, docxPath); err != nil {
			if database != nil && runID != uuid.Nil {
				_ = database.CompleteRun(ctx, runID, "failed")
			}
			return nil, fmt.Errorf("rendering docx failed: %w", err)
		}
	}

	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, "completed")
	}

	fmt.Printf("Done! Profile written to %s\n", outputPath)

	return &Result{
		Profile:      profile,
		RenderedText: rendered,
		OutputPath:   outputPath,
		DocxPath:     docxPath,
		RunID:        runID,
	}, nil
}

// validateProfile checks structural constraints on the extracted profile,
// currently the e-mail format
func validateProfile(profile *types.CandidateProfile) error {
	if err := validator.New().Struct(profile); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("profile field %s failed validation (%s)", errs[0].Field(), errs[0].Tag())
		}
		return fmt.Errorf("profile validation: %w", err)
	}
	return nil
}
