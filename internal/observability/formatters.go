// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-fit/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fit(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// fit truncates line to width runes, ending in "..." when it cuts.
func fit(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}

// writeList writes up to limit items as bullets, then a "... and N more" line.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintJobProfile outputs a human-readable summary of the extracted job profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Industry: %s (%.0f%%)\n\n", profile.Industry.Primary, profile.Industry.PrimaryConfidence()*100))

	sb.WriteString("Skills by category:\n")
	for _, category := range types.SkillCategories() {
		skills := profile.SkillsByCategory[category]
		if len(skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-11s %d  %s\n", category, len(skills), strings.Join(skills, ", ")))
	}
	sb.WriteString("\n")

	writeList(&sb, "Key requirements", profile.KeyRequirements, maxItemsToShow)
	writeList(&sb, "Preferred", profile.PreferredQualifications, 3)

	p.printBox("JOB PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintDocument outputs the customized document: template, summary, skills
// and achievements.
func (p *Printer) PrintDocument(doc *types.CustomizedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.TemplateKind))
	sb.WriteString(fmt.Sprintf("Version:  %s\n", doc.Version))
	if doc.Degraded {
		sb.WriteString(fmt.Sprintf("DEGRADED: %s\n", doc.DegradedReason))
	}
	sb.WriteString("\n")

	for _, line := range wrap(doc.Summary, boxWidth-4) {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")

	writeList(&sb, "Primary skills", doc.Skills.Primary, len(doc.Skills.Primary))
	writeList(&sb, "Secondary skills", doc.Skills.Secondary, 3)
	writeList(&sb, "Achievements", doc.Achievements, len(doc.Achievements))
	writeList(&sb, "Credentials", doc.Credentials, 3)

	p.printBox("CUSTOMIZED DOCUMENT", strings.TrimRight(sb.String(), "\n"))
}

// PrintScoreReport outputs the total, the per-dimension breakdown as bars and
// the recommendations.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	status := "below threshold"
	if report.MeetsThreshold {
		status = "meets threshold"
	}
	sb.WriteString(fmt.Sprintf("Total: %.2f / 100  (%s, %s)\n\n", report.TotalScore, report.QualityLevel, status))

	for _, dim := range types.DimensionOrder() {
		score := report.Breakdown[dim]
		sb.WriteString(fmt.Sprintf("%-23s %s %.2f\n", dim, bar(score, 20), score))
	}
	sb.WriteString("\n")

	if len(report.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for i, rec := range report.Recommendations {
			for j, line := range wrap(rec, boxWidth-9) {
				prefix := "    "
				if j == 0 {
					prefix = fmt.Sprintf("  %d. ", i+1)
				}
				sb.WriteString(prefix + line + "\n")
			}
		}
	}

	p.printBox("FIT SCORE", strings.TrimRight(sb.String(), "\n"))
}

// BatchLine is one row of a batch summary
type BatchLine struct {
	Title string
	Score float64
	Pass  bool
	Err   error
}

// PrintBatchSummary outputs one line per posting, best score first, with
// failed postings last.
func (p *Printer) PrintBatchSummary(lines []BatchLine) {
	if len(lines) == 0 {
		return
	}

	sorted := append([]BatchLine(nil), lines...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if (sorted[i].Err == nil) != (sorted[j].Err == nil) {
			return sorted[i].Err == nil
		}
		return sorted[i].Score > sorted[j].Score
	})

	var sb strings.Builder
	passed := 0
	for _, line := range sorted {
		switch {
		case line.Err != nil:
			sb.WriteString(fmt.Sprintf("  ✗ %-38s error\n", fit(line.Title, 38)))
		case line.Pass:
			passed++
			sb.WriteString(fmt.Sprintf("  ✓ %-38s %6.2f\n", fit(line.Title, 38), line.Score))
		default:
			sb.WriteString(fmt.Sprintf("  · %-38s %6.2f\n", fit(line.Title, 38), line.Score))
		}
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d postings meet the threshold", passed, len(lines)))

	p.printBox("BATCH SUMMARY", sb.String())
}

// bar renders score in [0,1] as a fixed-width bar.
func bar(score float64, width int) string {
	filled := int(score*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
