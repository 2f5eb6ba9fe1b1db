package command

// suggestThreshold is the maximum edit distance for a "did you mean"
// suggestion.
const suggestThreshold = 2

// Suggest returns the registered canonical name closest to the unknown
// input, when one is within the suggestion threshold.
func (r *Registry) Suggest(unknown string) (string, bool) {
	best := ""
	bestDist := suggestThreshold + 1
	for _, name := range r.Names() {
		if d := levenshtein(unknown, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best, best != ""
}

// levenshtein computes the edit distance between two strings using two
// rolling rows.
func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			cost := 1
			if ca == cb {
				cost = 0
			}
			curr[j+1] = min(prev[j+1]+1, min(curr[j]+1, prev[j]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}
