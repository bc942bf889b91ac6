package match

import (
	"sort"

	"careersie/internal/types"
)

// ReorderExperience ranks experience entries by the cosine similarity of
// their responsibilities against the job's responsibilities, descending.
// The sort is stable so equal-relevance entries keep their input order.
func ReorderExperience(experience []types.ExperienceEntry, jobResponsibilities []string) []types.RankedExperience {
	ranked := make([]types.RankedExperience, 0, len(experience))
	for _, entry := range experience {
		relevance := roundScore(cosineSimilarity(entry.Responsibilities, jobResponsibilities) * 100)
		ranked = append(ranked, types.RankedExperience{
			ExperienceEntry: entry,
			Relevance:       relevance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	return ranked
}
