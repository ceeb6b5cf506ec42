package grover

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantalab/grover/internal/quantum"
)

// SuccessProbability returns the empirical probability that a run's
// frequency table assigns to the target pattern.
func SuccessProbability(counts map[string]int, target string) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	return float64(counts[target]) / float64(total)
}

// ChiSquareUniform computes the chi-squared statistic of a frequency table
// against the uniform distribution over an n-qubit register, together with
// the critical value at the given confidence level (2^n-1 degrees of
// freedom). A statistic below the critical value means the counts are
// consistent with uniform sampling at that level.
func ChiSquareUniform(counts map[string]int, n int, confidence float64) (statistic, critical float64) {
	states := quantum.AllBasisStates(n)
	total := 0
	for _, c := range counts {
		total += c
	}

	observed := make([]float64, len(states))
	expected := make([]float64, len(states))
	exp := float64(total) / float64(len(states))
	for i, s := range states {
		observed[i] = float64(counts[s])
		expected[i] = exp
	}

	statistic = stat.ChiSquare(observed, expected)
	critical = distuv.ChiSquared{K: float64(len(states) - 1)}.Quantile(confidence)
	return statistic, critical
}
