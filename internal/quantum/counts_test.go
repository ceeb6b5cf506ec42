package quantum

import (
	"math"
	"reflect"
	"testing"
)

// TestFormatBasisState tests outcome-string rendering
func TestFormatBasisState(t *testing.T) {
	tests := []struct {
		index    int
		n        int
		expected string
	}{
		{0, 2, "00"},
		{1, 2, "10"}, // qubit 0 is character 0
		{2, 2, "01"},
		{3, 2, "11"},
		{5, 3, "101"},
		{0, 1, "0"},
	}

	for _, tt := range tests {
		if got := FormatBasisState(tt.index, tt.n); got != tt.expected {
			t.Errorf("FormatBasisState(%d, %d) = %q, expected %q", tt.index, tt.n, got, tt.expected)
		}
	}
}

// TestAllBasisStates tests state enumeration
func TestAllBasisStates(t *testing.T) {
	got := AllBasisStates(2)
	expected := []string{"00", "10", "01", "11"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("AllBasisStates(2) = %v, expected %v", got, expected)
	}
	if len(AllBasisStates(4)) != 16 {
		t.Errorf("expected 16 states for 4 qubits")
	}
}

// TestProbabilities tests frequency normalization
func TestProbabilities(t *testing.T) {
	counts := map[string]int{"00": 100, "11": 300}
	probs := Probabilities(counts)

	if math.Abs(probs["00"]-0.25) > 1e-12 {
		t.Errorf("expected P(00)=0.25, got %f", probs["00"])
	}
	if math.Abs(probs["11"]-0.75) > 1e-12 {
		t.Errorf("expected P(11)=0.75, got %f", probs["11"])
	}

	if got := Probabilities(map[string]int{}); len(got) != 0 {
		t.Errorf("empty counts should yield empty probabilities, got %v", got)
	}
}

// TestTopOutcome tests most-frequent-outcome selection
func TestTopOutcome(t *testing.T) {
	tests := []struct {
		name          string
		counts        map[string]int
		expected      string
		expectedCount int
	}{
		{"clear winner", map[string]int{"00": 10, "11": 900, "01": 5}, "11", 900},
		{"tie breaks lexicographically", map[string]int{"10": 50, "01": 50}, "01", 50},
		{"empty table", map[string]int{}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, count := TopOutcome(tt.counts)
			if outcome != tt.expected || count != tt.expectedCount {
				t.Errorf("expected (%q, %d), got (%q, %d)", tt.expected, tt.expectedCount, outcome, count)
			}
		})
	}
}
