package util

// LevenshteinDistance calculates the Levenshtein distance between two strings
func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)

	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = minOfThree(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// maxSuggestionDistance is the edit distance below which two names are
// considered near-misses of each other.
const maxSuggestionDistance = 2

// IsSimilar reports whether candidate is a plausible misspelling of name.
// Short names get a tighter threshold, and names of one or two characters
// only match exactly, so single-character flags don't suggest each other.
func IsSimilar(candidate, name string) bool {
	if candidate == name {
		return true
	}

	shortest := len(candidate)
	if len(name) < shortest {
		shortest = len(name)
	}
	if shortest < 3 {
		return false
	}

	threshold := maxSuggestionDistance
	if shortest < 4 {
		threshold = 1
	}

	return LevenshteinDistance(candidate, name) <= threshold
}

// Contains checks if a string slice contains a value
func Contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}

	return false
}

func minOfThree(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}
