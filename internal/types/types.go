package types

// ParseJobInput represents the input for parsing a raw job description
type ParseJobInput struct {
	JobDescription string `json:"jobDescription"`
}

// ParsedJobData is the structured extraction of a job posting.
// All slice fields are non-nil after validation; an empty slice means the
// extractor found nothing for that field.
type ParsedJobData struct {
	Role             string   `json:"role"`
	Seniority        string   `json:"seniority"`
	HardSkills       []string `json:"hard_skills"`
	SoftSkills       []string `json:"soft_skills"`
	Tools            []string `json:"tools"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Keywords         []string `json:"keywords"`
	NiceToHave       []string `json:"nice_to_have"`
}

// ExperienceEntry is a single past role in a candidate profile. Only the
// responsibilities matter for scoring; the rest is carried through untouched.
type ExperienceEntry struct {
	Title            string   `json:"title,omitempty"`
	Company          string   `json:"company,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// ProfileData is the scoring-relevant subset of a candidate profile.
// Every field is optional at the boundary; the scorer tolerates total
// absence of any of them.
type ProfileData struct {
	HardSkills []string          `json:"hard_skills,omitempty"`
	SoftSkills []string          `json:"soft_skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Seniority  string            `json:"seniority,omitempty"`
}

// ScoreBreakdown holds the five sub-scores and their weighted combination.
// Each value is an integer in [0,100].
type ScoreBreakdown struct {
	HardSkills       int `json:"hard_skills"`
	SoftSkills       int `json:"soft_skills"`
	Responsibilities int `json:"responsibilities"`
	Keywords         int `json:"keywords"`
	Seniority        int `json:"seniority"`
	Overall          int `json:"overall"`
}

// MatchDetails is the human-readable companion to ScoreBreakdown. The
// matched/missing sets use substring containment and may disagree with the
// exact-set Jaccard sub-scores at the margins; that divergence is intended.
type MatchDetails struct {
	MatchedHardSkills   []string `json:"matched_hard_skills"`
	MissingHardSkills   []string `json:"missing_hard_skills"`
	MatchedSoftSkills   []string `json:"matched_soft_skills"`
	MissingSoftSkills   []string `json:"missing_soft_skills"`
	MatchedKeywords     []string `json:"matched_keywords"`
	ExperienceAlignment string   `json:"experience_alignment"` // "high", "medium", or "low"
}

// RelevanceResult is the output of a scoring run
type RelevanceResult struct {
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	MatchDetails   MatchDetails   `json:"match_details"`
}

// RankedExperience is an experience entry annotated with its relevance to a
// job's responsibilities (0-100)
type RankedExperience struct {
	ExperienceEntry
	Relevance int `json:"relevance"`
}

// MatchResult combines a parsed job with its relevance scoring, as returned
// by the one-shot match flow
type MatchResult struct {
	ParsedJob      ParsedJobData  `json:"parsed_job"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	MatchDetails   MatchDetails   `json:"match_details"`
}
