package ai

import (
	"strings"

	"careersie/internal/types"
)

// ExtractKeywords builds the deduplicated keyword pool of a parsed job:
// hard skills, soft skills, tools, and extracted keywords, lower-cased
// and trimmed. First occurrence wins under the stable dedup.
func ExtractKeywords(parsed types.ParsedJobData) []string {
	sources := [][]string{
		parsed.HardSkills,
		parsed.SoftSkills,
		parsed.Tools,
		parsed.Keywords,
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, source := range sources {
		for _, item := range source {
			normalized := strings.ToLower(strings.TrimSpace(item))
			if normalized == "" {
				continue
			}
			if _, ok := seen[normalized]; ok {
				continue
			}
			seen[normalized] = struct{}{}
			keywords = append(keywords, normalized)
		}
	}

	return keywords
}
