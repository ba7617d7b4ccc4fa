package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lukas/bewerberprofil/internal/types"
)

// Recognizer is the external entity-recognition capability
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]types.Entity, error)
}

// Assembler combines the extraction components into one CandidateProfile.
// The NLP capabilities are injected; implementations must be safe for
// concurrent use by multiple in-flight Assemble calls.
type Assembler struct {
	// Recognizer and Summarizer are required
	Recognizer Recognizer
	Summarizer Summarizer

	// Skills configures vocabulary matching; the zero value uses plain
	// substring containment
	Skills Matcher

	// SummaryMaxLength and SummaryMinLength bound the synopsis
	SummaryMaxLength int
	SummaryMinLength int

	// Now supplies the generation-remark timestamp; defaults to time.Now
	Now func() time.Time

	// OnEntities, if set, receives the recognized entities after a
	// successful recognition pass
	OnEntities func(entities []types.Entity)
}

// NewAssembler returns an Assembler with the default summary bounds
func NewAssembler(recognizer Recognizer, summarizer Summarizer) *Assembler {
	return &Assembler{
		Recognizer:       recognizer,
		Summarizer:       summarizer,
		SummaryMaxLength: DefaultSummaryMaxLength,
		SummaryMinLength: DefaultSummaryMinLength,
		Now:              time.Now,
	}
}

// Assemble runs the full extraction pipeline over raw résumé text.
//
// Empty or whitespace-only input is a terminal branch: it returns the empty
// template profile without invoking any capability. Otherwise entity
// recognition and summarization run concurrently while the block extractors
// and skill matcher run over the text, and the merge waits for all parts.
//
// A recognizer failure is returned as an error matching ErrRecognition; a
// summarizer failure degrades to the fixed fallback string. The profile is
// never partially exposed.
func (a *Assembler) Assemble(ctx context.Context, rawText string) (*types.CandidateProfile, error) {
	if strings.TrimSpace(rawText) == "" {
		return types.EmptyProfile(), nil
	}

	var (
		entities []types.Entity
		summary  string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := a.Recognizer.Recognize(gctx, rawText)
		if err != nil {
			return &RecognitionError{Cause: err}
		}
		entities = result
		return nil
	})
	g.Go(func() error {
		summary = Summarize(gctx, a.Summarizer, rawText, a.summaryMax(), a.summaryMin())
		return nil
	})

	experience := ExtractExperience(rawText)
	education := ExtractEducation(rawText)
	skills := a.Skills.Match(rawText)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if a.OnEntities != nil {
		a.OnEntities(entities)
	}

	identity := ResolveIdentity(entities)

	return &types.CandidateProfile{
		HourlyRate:      "€",
		Name:            identity.Name,
		Email:           identity.Email,
		Phone:           identity.Phone,
		WorkExperience:  experience,
		Education:       education,
		ITSkills:        skills.IT,
		TechnicalSkills: skills.Technical,
		LanguageSkills:  skills.Languages,
		Summary:         summary,
		Remarks:         fmt.Sprintf("Profil automatisch generiert am %s", a.now().Format("02.01.2006")),
	}, nil
}

func (a *Assembler) summaryMax() int {
	if a.SummaryMaxLength > 0 {
		return a.SummaryMaxLength
	}
	return DefaultSummaryMaxLength
}

func (a *Assembler) summaryMin() int {
	if a.SummaryMinLength > 0 {
		return a.SummaryMinLength
	}
	return DefaultSummaryMinLength
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
