// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lukas/bewerberprofil/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEntities outputs a summary of the recognized named entities grouped
// by category.
func (p *Printer) PrintEntities(entities []types.Entity) {
	if len(entities) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO ENTITIES RECOGNIZED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	byCategory := map[string][]string{}
	for _, e := range entities {
		byCategory[e.Category] = append(byCategory[e.Category], e.Text)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entities: %d\n", len(entities)))

	for _, category := range []string{
		types.CategoryPerson,
		types.CategoryOrganization,
		types.CategoryLocation,
		types.CategoryMisc,
	} {
		texts := byCategory[category]
		if len(texts) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s (%d):\n", category, len(texts)))
		count := min(len(texts), maxItemsToShow)
		for i := 0; i < count; i++ {
			text := texts[i]
			if len(text) > 45 {
				text = text[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
		if len(texts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(texts)-maxItemsToShow))
		}
	}

	p.printBox("RECOGNIZED ENTITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable digest of the extracted candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("E-Mail:   %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Telefon:  %s\n", orDash(profile.Phone)))
	sb.WriteString("\n")

	if len(profile.WorkExperience) > 0 {
		sb.WriteString("Berufserfahrung:\n")
		count := min(len(profile.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s  %s\n", entry.Period, entry.Company))
		}
		if len(profile.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Ausbildung:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			entry := profile.Education[i]
			if entry.Period != "" {
				sb.WriteString(fmt.Sprintf("  • %s\n", entry.Period))
			} else {
				sb.WriteString("  • (ohne Zeitraum)\n")
			}
		}
		if len(profile.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("EDV:      %s\n", joinOrDash(profile.ITSkills)))
	sb.WriteString(fmt.Sprintf("Technik:  %s\n", joinOrDash(profile.TechnicalSkills)))
	sb.WriteString(fmt.Sprintf("Sprachen: %s", joinOrDash(profile.LanguageSkills)))

	p.printBox("CANDIDATE PROFILE", sb.String())
}

// PrintSummary outputs the generated professional summary.
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}

	var sb strings.Builder
	for len(summary) > boxWidth-4 {
		sb.WriteString(summary[:boxWidth-4])
		sb.WriteString("\n")
		summary = summary[boxWidth-4:]
	}
	sb.WriteString(summary)

	p.printBox("SUMMARY", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "–"
	}
	joined := strings.Join(items, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return joined
}
