package formatters

import (
	"strings"
	"testing"

	"careersie/internal/types"
)

func TestRegistryDispatch(t *testing.T) {
	registry := NewFormatterRegistry()

	job := types.ParsedJobData{
		Role:       "Backend Engineer",
		Seniority:  "senior",
		HardSkills: []string{"go", "postgresql"},
	}

	t.Run("TextFormatter", func(t *testing.T) {
		output, err := registry.Format(job, "text")
		if err != nil {
			t.Fatalf("Format() error: %v", err)
		}
		if !strings.Contains(output, "Role: Backend Engineer") {
			t.Errorf("text output missing role: %s", output)
		}
		if !strings.Contains(output, "- go") {
			t.Errorf("text output missing hard skill: %s", output)
		}
	})

	t.Run("MarkdownFormatter", func(t *testing.T) {
		output, err := registry.Format(job, "markdown")
		if err != nil {
			t.Fatalf("Format() error: %v", err)
		}
		if !strings.Contains(output, "# Parsed Job Description") {
			t.Errorf("markdown output missing heading: %s", output)
		}
	})

	t.Run("JSONFallback", func(t *testing.T) {
		output, err := registry.Format(map[string]string{"key": "value"}, "json")
		if err != nil {
			t.Fatalf("Format() error: %v", err)
		}
		if !strings.Contains(output, `"key": "value"`) {
			t.Errorf("json output unexpected: %s", output)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, err := registry.Format(job, "yaml"); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}

func TestRelevanceResultTextFormat(t *testing.T) {
	result := types.RelevanceResult{
		ScoreBreakdown: types.ScoreBreakdown{
			HardSkills: 33,
			SoftSkills: 100,
			Keywords:   100,
			Seniority:  100,
			Overall:    53,
		},
		MatchDetails: types.MatchDetails{
			MatchedHardSkills:   []string{"react"},
			MissingHardSkills:   []string{"redux"},
			ExperienceAlignment: "low",
		},
	}

	output, err := GlobalRegistry.Format(result, "text")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	for _, want := range []string{
		"Overall Score: 53/100",
		"Missing Hard Skills:",
		"- redux",
		"Experience Alignment: low",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRankedExperienceFormat(t *testing.T) {
	ranked := []types.RankedExperience{
		{
			ExperienceEntry: types.ExperienceEntry{
				Title:            "Backend Engineer",
				Company:          "Acme",
				Responsibilities: []string{"built services"},
			},
			Relevance: 87,
		},
	}

	output, err := GlobalRegistry.Format(ranked, "text")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	if !strings.Contains(output, "1. Backend Engineer, Acme (relevance: 87/100)") {
		t.Errorf("output missing ranked entry:\n%s", output)
	}
}
