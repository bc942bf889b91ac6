package match

import (
	"math"
	"strings"

	"careersie/internal/types"
)

// Sub-score weights for the overall relevance score. They sum to 1.0.
const (
	weightHardSkills       = 0.4
	weightSoftSkills       = 0.2
	weightResponsibilities = 0.2
	weightKeywords         = 0.1
	weightSeniority        = 0.1
)

// Alignment buckets for the raw responsibilities cosine value.
const (
	alignmentHighThreshold   = 0.7
	alignmentMediumThreshold = 0.4
)

// CalculateRelevanceScore computes the weighted relevance of a candidate
// profile against a parsed job posting. It is pure and never fails:
// absent profile fields degrade to empty slices and the default
// seniority.
//
// Each sub-score is rounded independently before the weighted overall
// score is rounded. Callers relying on reproducible output must keep
// both rounding stages.
func CalculateRelevanceScore(profile types.ProfileData, job types.ParsedJobData) types.RelevanceResult {
	profileSeniority := profile.Seniority
	if strings.TrimSpace(profileSeniority) == "" {
		profileSeniority = DefaultSeniority
	}

	profileResponsibilities := flattenResponsibilities(profile.Experience)

	hardScore := roundScore(jaccardSimilarity(profile.HardSkills, job.HardSkills) * 100)
	softScore := roundScore(jaccardSimilarity(profile.SoftSkills, job.SoftSkills) * 100)

	respSimilarity := cosineSimilarity(profileResponsibilities, job.Responsibilities)
	respScore := roundScore(respSimilarity * 100)

	pool := keywordPool(profile, profileResponsibilities)
	keywordScore, matchedKeywords := keywordOverlap(job.Keywords, pool)
	seniorityScore := seniorityAlignment(profileSeniority, job.Seniority)

	overall := roundScore(
		weightHardSkills*float64(hardScore) +
			weightSoftSkills*float64(softScore) +
			weightResponsibilities*float64(respScore) +
			weightKeywords*float64(keywordScore) +
			weightSeniority*float64(seniorityScore))

	matchedHard, missingHard := matchSkills(job.HardSkills, profile.HardSkills)
	matchedSoft, missingSoft := matchSkills(job.SoftSkills, profile.SoftSkills)

	return types.RelevanceResult{
		ScoreBreakdown: types.ScoreBreakdown{
			HardSkills:       hardScore,
			SoftSkills:       softScore,
			Responsibilities: respScore,
			Keywords:         keywordScore,
			Seniority:        seniorityScore,
			Overall:          overall,
		},
		MatchDetails: types.MatchDetails{
			MatchedHardSkills:   matchedHard,
			MissingHardSkills:   missingHard,
			MatchedSoftSkills:   matchedSoft,
			MissingSoftSkills:   missingSoft,
			MatchedKeywords:     matchedKeywords,
			ExperienceAlignment: alignmentBucket(respSimilarity),
		},
	}
}

func roundScore(value float64) int {
	return int(math.Round(value))
}

func alignmentBucket(similarity float64) string {
	switch {
	case similarity >= alignmentHighThreshold:
		return "high"
	case similarity >= alignmentMediumThreshold:
		return "medium"
	default:
		return "low"
	}
}

func flattenResponsibilities(experience []types.ExperienceEntry) []string {
	var all []string
	for _, entry := range experience {
		all = append(all, entry.Responsibilities...)
	}
	return all
}

// keywordPool builds the profile-side text pool keywords are matched
// against: skills plus the individual words of experience
// responsibilities.
func keywordPool(profile types.ProfileData, responsibilities []string) []string {
	pool := make([]string, 0, len(profile.HardSkills)+len(profile.SoftSkills))
	pool = append(pool, profile.HardSkills...)
	pool = append(pool, profile.SoftSkills...)
	for _, resp := range responsibilities {
		pool = append(pool, strings.Fields(resp)...)
	}
	return pool
}

// keywordOverlap returns the percentage of job keywords found in the
// profile pool via case-insensitive substring containment, plus the
// keywords that matched. Blank keywords are dropped before the fraction
// is computed so they neither match nor count against the score. A job
// keyword list with nothing usable scores exactly 100: a job with
// nothing extracted is vacuously covered, not penalized.
func keywordOverlap(jobKeywords, pool []string) (int, []string) {
	candidates := make([]string, 0, len(jobKeywords))
	for _, keyword := range jobKeywords {
		if strings.TrimSpace(keyword) != "" {
			candidates = append(candidates, keyword)
		}
	}
	if len(candidates) == 0 {
		return 100, nil
	}

	lowered := make([]string, 0, len(pool))
	for _, item := range pool {
		lowered = append(lowered, strings.ToLower(item))
	}

	var matched []string
	for _, keyword := range candidates {
		needle := strings.ToLower(strings.TrimSpace(keyword))
		for _, hay := range lowered {
			if strings.Contains(hay, needle) {
				matched = append(matched, keyword)
				break
			}
		}
	}

	score := roundScore(float64(len(matched)) / float64(len(candidates)) * 100)
	return score, matched
}

// matchSkills reconciles job skills against profile skills using
// bidirectional substring containment, so "React" matches "React.js".
// This is intentionally looser than the exact-set Jaccard used for the
// numeric sub-scores; the score and its explanation may disagree at the
// margins.
func matchSkills(jobSkills, profileSkills []string) (matched, missing []string) {
	loweredProfile := make([]string, 0, len(profileSkills))
	for _, skill := range profileSkills {
		loweredProfile = append(loweredProfile, strings.ToLower(strings.TrimSpace(skill)))
	}

	for _, jobSkill := range jobSkills {
		needle := strings.ToLower(strings.TrimSpace(jobSkill))
		if needle == "" {
			continue
		}
		found := false
		for _, profileSkill := range loweredProfile {
			if profileSkill == "" {
				continue
			}
			if strings.Contains(needle, profileSkill) || strings.Contains(profileSkill, needle) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}
	return matched, missing
}
