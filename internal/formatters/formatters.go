package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"careersie/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ParsedJobData", &ParsedJobTextFormatter{})
	registry.RegisterFormatter("markdown", "ParsedJobData", &ParsedJobMarkdownFormatter{})
	registry.RegisterFormatter("text", "RelevanceResult", &RelevanceTextFormatter{})
	registry.RegisterFormatter("markdown", "RelevanceResult", &RelevanceMarkdownFormatter{})
	registry.RegisterFormatter("text", "RankedExperience", &RankedExperienceTextFormatter{})
	registry.RegisterFormatter("markdown", "RankedExperience", &RankedExperienceMarkdownFormatter{})
	registry.RegisterFormatter("text", "MatchResult", &MatchResultTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchResult", &MatchResultMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ParsedJobData:
		return "ParsedJobData"
	case types.RelevanceResult:
		return "RelevanceResult"
	case []types.RankedExperience:
		return "RankedExperience"
	case types.MatchResult:
		return "MatchResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func writeList(output *strings.Builder, heading string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(heading)
	output.WriteString("\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("%s %s\n", bullet, item))
	}
	output.WriteString("\n")
}

// ParsedJobTextFormatter handles text formatting for parsed job descriptions
type ParsedJobTextFormatter struct{}

func (pjf *ParsedJobTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ParsedJobData)
	if !ok {
		return "", fmt.Errorf("expected ParsedJobData, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PARSED JOB DESCRIPTION ===\n\n")
	output.WriteString(fmt.Sprintf("Role: %s\n", result.Role))
	output.WriteString(fmt.Sprintf("Seniority: %s\n\n", result.Seniority))

	writeList(&output, "Hard Skills:", result.HardSkills, "-")
	writeList(&output, "Soft Skills:", result.SoftSkills, "-")
	writeList(&output, "Tools:", result.Tools, "-")
	writeList(&output, "Responsibilities:", result.Responsibilities, "-")
	writeList(&output, "Requirements:", result.Requirements, "-")
	writeList(&output, "Keywords:", result.Keywords, "-")
	writeList(&output, "Nice to Have:", result.NiceToHave, "-")

	return output.String(), nil
}

func (pjf *ParsedJobTextFormatter) SupportedType() string {
	return "ParsedJobData"
}

// ParsedJobMarkdownFormatter handles markdown formatting for parsed job descriptions
type ParsedJobMarkdownFormatter struct{}

func (pjmf *ParsedJobMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ParsedJobData)
	if !ok {
		return "", fmt.Errorf("expected ParsedJobData, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Parsed Job Description\n\n")
	output.WriteString(fmt.Sprintf("**Role:** %s\n\n", result.Role))
	output.WriteString(fmt.Sprintf("**Seniority:** %s\n\n", result.Seniority))

	writeList(&output, "## Hard Skills", result.HardSkills, "-")
	writeList(&output, "## Soft Skills", result.SoftSkills, "-")
	writeList(&output, "## Tools", result.Tools, "-")
	writeList(&output, "## Responsibilities", result.Responsibilities, "-")
	writeList(&output, "## Requirements", result.Requirements, "-")
	writeList(&output, "## Keywords", result.Keywords, "-")
	writeList(&output, "## Nice to Have", result.NiceToHave, "-")

	return output.String(), nil
}

func (pjmf *ParsedJobMarkdownFormatter) SupportedType() string {
	return "ParsedJobData"
}

func writeScoreBreakdownText(output *strings.Builder, breakdown types.ScoreBreakdown) {
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", breakdown.Overall))
	output.WriteString("Score Breakdown:\n")
	output.WriteString(fmt.Sprintf("  Hard Skills:      %d/100\n", breakdown.HardSkills))
	output.WriteString(fmt.Sprintf("  Soft Skills:      %d/100\n", breakdown.SoftSkills))
	output.WriteString(fmt.Sprintf("  Responsibilities: %d/100\n", breakdown.Responsibilities))
	output.WriteString(fmt.Sprintf("  Keywords:         %d/100\n", breakdown.Keywords))
	output.WriteString(fmt.Sprintf("  Seniority:        %d/100\n\n", breakdown.Seniority))
}

func writeMatchDetailsText(output *strings.Builder, details types.MatchDetails) {
	writeList(output, "Matched Hard Skills:", details.MatchedHardSkills, "-")
	writeList(output, "Missing Hard Skills:", details.MissingHardSkills, "-")
	writeList(output, "Matched Soft Skills:", details.MatchedSoftSkills, "-")
	writeList(output, "Missing Soft Skills:", details.MissingSoftSkills, "-")
	writeList(output, "Matched Keywords:", details.MatchedKeywords, "-")
	output.WriteString(fmt.Sprintf("Experience Alignment: %s\n", details.ExperienceAlignment))
}

func writeScoreBreakdownMarkdown(output *strings.Builder, breakdown types.ScoreBreakdown) {
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", breakdown.Overall))
	output.WriteString("| Category | Score |\n")
	output.WriteString("|----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Hard Skills | %d |\n", breakdown.HardSkills))
	output.WriteString(fmt.Sprintf("| Soft Skills | %d |\n", breakdown.SoftSkills))
	output.WriteString(fmt.Sprintf("| Responsibilities | %d |\n", breakdown.Responsibilities))
	output.WriteString(fmt.Sprintf("| Keywords | %d |\n", breakdown.Keywords))
	output.WriteString(fmt.Sprintf("| Seniority | %d |\n\n", breakdown.Seniority))
}

func writeMatchDetailsMarkdown(output *strings.Builder, details types.MatchDetails) {
	writeList(output, "### Matched Hard Skills", details.MatchedHardSkills, "-")
	writeList(output, "### Missing Hard Skills", details.MissingHardSkills, "-")
	writeList(output, "### Matched Soft Skills", details.MatchedSoftSkills, "-")
	writeList(output, "### Missing Soft Skills", details.MissingSoftSkills, "-")
	writeList(output, "### Matched Keywords", details.MatchedKeywords, "-")
	output.WriteString(fmt.Sprintf("**Experience Alignment:** %s\n", details.ExperienceAlignment))
}

// RelevanceTextFormatter handles text formatting for relevance scores
type RelevanceTextFormatter struct{}

func (rtf *RelevanceTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RelevanceResult)
	if !ok {
		return "", fmt.Errorf("expected RelevanceResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RELEVANCE SCORE ===\n\n")
	writeScoreBreakdownText(&output, result.ScoreBreakdown)

	output.WriteString("=== MATCH DETAILS ===\n\n")
	writeMatchDetailsText(&output, result.MatchDetails)

	return output.String(), nil
}

func (rtf *RelevanceTextFormatter) SupportedType() string {
	return "RelevanceResult"
}

// RelevanceMarkdownFormatter handles markdown formatting for relevance scores
type RelevanceMarkdownFormatter struct{}

func (rmf *RelevanceMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RelevanceResult)
	if !ok {
		return "", fmt.Errorf("expected RelevanceResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Relevance Score\n\n")
	writeScoreBreakdownMarkdown(&output, result.ScoreBreakdown)

	output.WriteString("## Match Details\n\n")
	writeMatchDetailsMarkdown(&output, result.MatchDetails)

	return output.String(), nil
}

func (rmf *RelevanceMarkdownFormatter) SupportedType() string {
	return "RelevanceResult"
}

// RankedExperienceTextFormatter handles text formatting for ranked experience lists
type RankedExperienceTextFormatter struct{}

func (ref *RankedExperienceTextFormatter) Format(data any) (string, error) {
	result, ok := data.([]types.RankedExperience)
	if !ok {
		return "", fmt.Errorf("expected []RankedExperience, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RANKED EXPERIENCE ===\n\n")
	if len(result) == 0 {
		output.WriteString("No experience entries.\n")
		return output.String(), nil
	}

	for i, entry := range result {
		header := entry.Title
		if header == "" {
			header = "(untitled)"
		}
		if entry.Company != "" {
			header = fmt.Sprintf("%s, %s", header, entry.Company)
		}
		output.WriteString(fmt.Sprintf("%d. %s (relevance: %d/100)\n", i+1, header, entry.Relevance))
		for _, resp := range entry.Responsibilities {
			output.WriteString(fmt.Sprintf("   - %s\n", resp))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ref *RankedExperienceTextFormatter) SupportedType() string {
	return "RankedExperience"
}

// RankedExperienceMarkdownFormatter handles markdown formatting for ranked experience lists
type RankedExperienceMarkdownFormatter struct{}

func (remf *RankedExperienceMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.([]types.RankedExperience)
	if !ok {
		return "", fmt.Errorf("expected []RankedExperience, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Ranked Experience\n\n")
	if len(result) == 0 {
		output.WriteString("No experience entries.\n")
		return output.String(), nil
	}

	for i, entry := range result {
		header := entry.Title
		if header == "" {
			header = "(untitled)"
		}
		if entry.Company != "" {
			header = fmt.Sprintf("%s, %s", header, entry.Company)
		}
		output.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, header))
		output.WriteString(fmt.Sprintf("**Relevance:** %d/100\n\n", entry.Relevance))
		for _, resp := range entry.Responsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", resp))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (remf *RankedExperienceMarkdownFormatter) SupportedType() string {
	return "RankedExperience"
}

// MatchResultTextFormatter handles text formatting for combined match results
type MatchResultTextFormatter struct{}

func (mtf *MatchResultTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchResult)
	if !ok {
		return "", fmt.Errorf("expected MatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB MATCH ===\n\n")
	output.WriteString(fmt.Sprintf("Role: %s\n", result.ParsedJob.Role))
	output.WriteString(fmt.Sprintf("Seniority: %s\n\n", result.ParsedJob.Seniority))

	writeScoreBreakdownText(&output, result.ScoreBreakdown)

	output.WriteString("=== MATCH DETAILS ===\n\n")
	writeMatchDetailsText(&output, result.MatchDetails)

	return output.String(), nil
}

func (mtf *MatchResultTextFormatter) SupportedType() string {
	return "MatchResult"
}

// MatchResultMarkdownFormatter handles markdown formatting for combined match results
type MatchResultMarkdownFormatter struct{}

func (mmf *MatchResultMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchResult)
	if !ok {
		return "", fmt.Errorf("expected MatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Match\n\n")
	output.WriteString(fmt.Sprintf("**Role:** %s\n\n", result.ParsedJob.Role))
	output.WriteString(fmt.Sprintf("**Seniority:** %s\n\n", result.ParsedJob.Seniority))

	writeScoreBreakdownMarkdown(&output, result.ScoreBreakdown)

	output.WriteString("## Match Details\n\n")
	writeMatchDetailsMarkdown(&output, result.MatchDetails)

	return output.String(), nil
}

func (mmf *MatchResultMarkdownFormatter) SupportedType() string {
	return "MatchResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
