package quantum

// Helpers for working with measurement frequency tables. Outcome strings use
// the register's own ordering: character i of an outcome is the classical
// bit i, which under MeasureAll holds the value of qubit i.

// FormatBasisState renders basis-state index i of an n-qubit register as an
// outcome string.
func FormatBasisState(i, n int) string {
	b := make([]byte, n)
	for q := 0; q < n; q++ {
		if i>>q&1 == 1 {
			b[q] = '1'
		} else {
			b[q] = '0'
		}
	}
	return string(b)
}

// AllBasisStates lists every outcome string of an n-qubit register in
// basis-state index order.
func AllBasisStates(n int) []string {
	states := make([]string, 1<<n)
	for i := range states {
		states[i] = FormatBasisState(i, n)
	}
	return states
}

// Probabilities converts a frequency table into empirical probabilities.
func Probabilities(counts map[string]int) map[string]float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	probs := make(map[string]float64, len(counts))
	if total == 0 {
		return probs
	}
	for outcome, c := range counts {
		probs[outcome] = float64(c) / float64(total)
	}
	return probs
}

// TopOutcome returns the most frequent outcome and its count. Ties break
// toward the lexicographically smaller outcome so the result is
// deterministic.
func TopOutcome(counts map[string]int) (string, int) {
	best := ""
	bestCount := -1
	for outcome, c := range counts {
		if c > bestCount || (c == bestCount && outcome < best) {
			best = outcome
			bestCount = c
		}
	}
	if bestCount < 0 {
		return "", 0
	}
	return best, bestCount
}
