package clipcut

import "sort"

// closeMatchCutoff is the minimum similarity for a candidate to be proposed.
// Below it the caller should list every valid name instead of guessing.
const closeMatchCutoff = 0.6

// maxCloseMatches bounds how many suggestions are surfaced at once.
const maxCloseMatches = 3

// CloseMatches returns up to three candidate names similar to target,
// best first. It returns nil when nothing clears the similarity cutoff.
// Both the CLI parser and the inline parser use it for "Did you mean"
// suggestions on unknown names.
func CloseMatches(target string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	matches := make([]scored, 0, len(candidates))

	for _, candidate := range candidates {
		score := similarity(target, candidate)
		if score >= closeMatchCutoff && candidate != target {
			matches = append(matches, scored{name: candidate, score: score})
		}
	}

	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > maxCloseMatches {
		matches = matches[:maxCloseMatches]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}

	return names
}

// similarity maps levenshtein distance onto [0, 1], 1 meaning equal.
func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshteinDistance(a, b))/float64(longest)
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}

	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1, // deletion
				min(
					matrix[i][j-1]+1,      // insertion
					matrix[i-1][j-1]+cost, // substitution
				),
			)
		}
	}

	return matrix[len(a)][len(b)]
}
