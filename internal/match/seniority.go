package match

import "strings"

// Seniority ladder positions by ordinal rank. "principal" and "staff"
// share the top bucket, so the effective ladder has five distinct
// positions.
const (
	levelJunior = iota
	levelMid
	levelSenior
	levelLead
	levelPrincipal
)

// DefaultSeniority is assumed when a label matches no known level.
const DefaultSeniority = "mid"

// normalizeSeniority maps a free-text seniority label to an ordinal
// ladder position using substring containment. Order matters: "senior
// staff engineer" must land on the staff bucket, not senior.
func normalizeSeniority(label string) int {
	normalized := strings.ToLower(strings.TrimSpace(label))

	switch {
	case strings.Contains(normalized, "principal"), strings.Contains(normalized, "staff"):
		return levelPrincipal
	case strings.Contains(normalized, "lead"):
		return levelLead
	case strings.Contains(normalized, "senior"), strings.Contains(normalized, "sr"):
		return levelSenior
	case strings.Contains(normalized, "junior"), strings.Contains(normalized, "jr"),
		strings.Contains(normalized, "entry"), strings.Contains(normalized, "intern"):
		return levelJunior
	default:
		return levelMid
	}
}

// seniorityAlignment scores the ordinal distance between two free-text
// seniority labels as a discrete step function: 0 levels apart scores
// 100, 1 scores 70, 2 scores 40, anything further 20.
func seniorityAlignment(profileLabel, jobLabel string) int {
	distance := normalizeSeniority(profileLabel) - normalizeSeniority(jobLabel)
	if distance < 0 {
		distance = -distance
	}

	switch distance {
	case 0:
		return 100
	case 1:
		return 70
	case 2:
		return 40
	default:
		return 20
	}
}
