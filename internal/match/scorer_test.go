package match

import (
	"reflect"
	"testing"

	"careersie/internal/types"
)

func TestCalculateRelevanceScoreScenario(t *testing.T) {
	profile := types.ProfileData{
		HardSkills: []string{"React", "Node.js"},
		SoftSkills: []string{"communication"},
		Seniority:  "Senior Engineer",
	}
	job := types.ParsedJobData{
		HardSkills:       []string{"react", "redux"},
		SoftSkills:       []string{"communication"},
		Seniority:        "Senior",
		Responsibilities: []string{},
		Keywords:         []string{},
	}

	result := CalculateRelevanceScore(profile, job)

	want := types.ScoreBreakdown{
		HardSkills:       33,
		SoftSkills:       100,
		Responsibilities: 0,
		Keywords:         100,
		Seniority:        100,
		Overall:          53,
	}
	if result.ScoreBreakdown != want {
		t.Errorf("ScoreBreakdown = %+v, want %+v", result.ScoreBreakdown, want)
	}

	if !reflect.DeepEqual(result.MatchDetails.MatchedHardSkills, []string{"react"}) {
		t.Errorf("MatchedHardSkills = %v, want [react]", result.MatchDetails.MatchedHardSkills)
	}
	if !reflect.DeepEqual(result.MatchDetails.MissingHardSkills, []string{"redux"}) {
		t.Errorf("MissingHardSkills = %v, want [redux]", result.MatchDetails.MissingHardSkills)
	}
	if !reflect.DeepEqual(result.MatchDetails.MatchedSoftSkills, []string{"communication"}) {
		t.Errorf("MatchedSoftSkills = %v, want [communication]", result.MatchDetails.MatchedSoftSkills)
	}
	if result.MatchDetails.ExperienceAlignment != "low" {
		t.Errorf("ExperienceAlignment = %q, want low", result.MatchDetails.ExperienceAlignment)
	}
}

func TestCalculateRelevanceScoreEmptyInputs(t *testing.T) {
	result := CalculateRelevanceScore(types.ProfileData{}, types.ParsedJobData{})

	// Empty profile against empty job: similarity sub-scores are zero,
	// keywords vacuously 100, seniority defaults both sides to mid.
	want := types.ScoreBreakdown{
		HardSkills:       0,
		SoftSkills:       0,
		Responsibilities: 0,
		Keywords:         100,
		Seniority:        100,
		Overall:          20,
	}
	if result.ScoreBreakdown != want {
		t.Errorf("ScoreBreakdown = %+v, want %+v", result.ScoreBreakdown, want)
	}
}

func TestCalculateRelevanceScoreOverallBounds(t *testing.T) {
	profiles := []types.ProfileData{
		{},
		{HardSkills: []string{"go", "python", "sql"}, SoftSkills: []string{"teamwork"}},
		{
			HardSkills: []string{"go"},
			Experience: []types.ExperienceEntry{
				{Responsibilities: []string{"build backend services in go"}},
			},
			Seniority: "principal",
		},
	}
	jobs := []types.ParsedJobData{
		{},
		{HardSkills: []string{"go"}, Keywords: []string{"go", "kubernetes"}},
		{
			HardSkills:       []string{"go", "sql"},
			SoftSkills:       []string{"teamwork", "ownership"},
			Responsibilities: []string{"build and maintain backend services"},
			Keywords:         []string{"backend"},
			Seniority:        "junior",
		},
	}

	for _, profile := range profiles {
		for _, job := range jobs {
			result := CalculateRelevanceScore(profile, job)
			overall := result.ScoreBreakdown.Overall
			if overall < 0 || overall > 100 {
				t.Errorf("overall score %d out of [0,100] for profile %+v vs job %+v", overall, profile, job)
			}
		}
	}
}

func TestKeywordOverlap(t *testing.T) {
	tests := []struct {
		name        string
		keywords    []string
		pool        []string
		wantScore   int
		wantMatched []string
	}{
		{
			name:        "empty keywords scores exactly 100",
			keywords:    nil,
			pool:        []string{"go"},
			wantScore:   100,
			wantMatched: nil,
		},
		{
			name:        "substring containment matches",
			keywords:    []string{"react"},
			pool:        []string{"React.js"},
			wantScore:   100,
			wantMatched: []string{"react"},
		},
		{
			name:        "partial coverage",
			keywords:    []string{"go", "kubernetes"},
			pool:        []string{"golang", "docker"},
			wantScore:   50,
			wantMatched: []string{"go"},
		},
		{
			name:        "nothing matches",
			keywords:    []string{"rust"},
			pool:        []string{"go"},
			wantScore:   0,
			wantMatched: nil,
		},
		{
			name:        "blank keywords excluded from denominator",
			keywords:    []string{"go", "", "   "},
			pool:        []string{"golang"},
			wantScore:   100,
			wantMatched: []string{"go"},
		},
		{
			name:        "all-blank keywords score exactly 100",
			keywords:    []string{"", "  ", "\t"},
			pool:        []string{"go"},
			wantScore:   100,
			wantMatched: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := keywordOverlap(tt.keywords, tt.pool)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
		})
	}
}

func TestMatchSkillsAsymmetricContainment(t *testing.T) {
	matched, missing := matchSkills(
		[]string{"React", "TypeScript", "GraphQL"},
		[]string{"react.js", "typescript"},
	)

	if !reflect.DeepEqual(matched, []string{"React", "TypeScript"}) {
		t.Errorf("matched = %v, want [React TypeScript]", matched)
	}
	if !reflect.DeepEqual(missing, []string{"GraphQL"}) {
		t.Errorf("missing = %v, want [GraphQL]", missing)
	}
}

func TestAlignmentBucket(t *testing.T) {
	tests := []struct {
		similarity float64
		want       string
	}{
		{0.9, "high"},
		{0.7, "high"},
		{0.5, "medium"},
		{0.4, "medium"},
		{0.2, "low"},
		{0, "low"},
	}

	for _, tt := range tests {
		if got := alignmentBucket(tt.similarity); got != tt.want {
			t.Errorf("alignmentBucket(%v) = %q, want %q", tt.similarity, got, tt.want)
		}
	}
}

func BenchmarkCalculateRelevanceScore(b *testing.B) {
	profile := types.ProfileData{
		HardSkills: []string{"go", "postgresql", "kubernetes", "terraform"},
		SoftSkills: []string{"communication", "mentoring"},
		Experience: []types.ExperienceEntry{
			{Responsibilities: []string{
				"designed and built backend services in go",
				"operated kubernetes clusters in production",
			}},
			{Responsibilities: []string{"maintained ci pipelines"}},
		},
		Seniority: "senior",
	}
	job := types.ParsedJobData{
		HardSkills:       []string{"go", "kubernetes", "aws"},
		SoftSkills:       []string{"communication"},
		Responsibilities: []string{"build and operate backend services"},
		Keywords:         []string{"go", "backend", "kubernetes"},
		Seniority:        "senior",
	}

	for b.Loop() {
		CalculateRelevanceScore(profile, job)
	}
}
