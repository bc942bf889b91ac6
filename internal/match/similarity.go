package match

import (
	"math"
	"strings"
)

// normalizeSet lowercases and trims each string, dropping empties and
// exact duplicates.
func normalizeSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		normalized := strings.ToLower(strings.TrimSpace(item))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

// jaccardSimilarity computes |A∩B| / |A∪B| over the normalized sets.
// Returns 0 when either side is empty: no data on one side means no
// evidence of a match, not undefined similarity.
func jaccardSimilarity(a, b []string) float64 {
	setA := normalizeSet(a)
	setB := normalizeSet(b)

	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for item := range setA {
		if _, ok := setB[item]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// termFrequencies builds a lower-cased bag-of-words over all strings,
// splitting on whitespace.
func termFrequencies(texts []string) map[string]float64 {
	freq := make(map[string]float64)
	for _, text := range texts {
		for _, word := range strings.Fields(strings.ToLower(text)) {
			freq[word]++
		}
	}
	return freq
}

// cosineSimilarity computes cosine similarity between the bag-of-words
// vectors of two string sequences. Returns 0 when either vector has zero
// magnitude. Deliberately crude: no TF-IDF, no stemming.
func cosineSimilarity(a, b []string) float64 {
	freqA := termFrequencies(a)
	freqB := termFrequencies(b)

	var dot, magA, magB float64
	for word, countA := range freqA {
		magA += countA * countA
		if countB, ok := freqB[word]; ok {
			dot += countA * countB
		}
	}
	for _, countB := range freqB {
		magB += countB * countB
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
