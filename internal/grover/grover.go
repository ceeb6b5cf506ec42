// Package grover implements Grover's quantum search: uniform search-space
// encoding, a target-marking oracle, the diffusion operator, and the
// optimal-iteration estimate, composed into runnable circuits.
package grover

import (
	"fmt"
	"math"

	"github.com/quantalab/grover/internal/models/grover"
	"github.com/quantalab/grover/internal/quantum"
)

// PrepareUniform appends a Hadamard to every listed qubit, spreading the
// register into an equal superposition over all 2^n basis states. Measuring
// immediately afterwards yields each bit-string with probability 1/2^n.
func PrepareUniform(c *quantum.Circuit, qubits []int) error {
	for _, q := range qubits {
		if err := c.H(q); err != nil {
			return err
		}
	}
	return nil
}

// ApplyOracle appends a conditional phase flip that multiplies the amplitude
// of exactly one basis state by -1 and leaves every other amplitude
// untouched. The marked state is given as a bit pattern whose character i is
// the required value of qubit i; the pattern must cover the whole register.
//
// The construction conjugates a conditional phase across all qubits with X
// gates on the pattern's zero positions, so the all-ones case reduces to the
// bare conditional phase.
func ApplyOracle(c *quantum.Circuit, pattern string) error {
	if err := checkPattern(c, pattern); err != nil {
		return err
	}

	zeros := make([]int, 0, len(pattern))
	all := make([]int, len(pattern))
	for i, ch := range pattern {
		all[i] = i
		if ch == '0' {
			zeros = append(zeros, i)
		}
	}

	for _, q := range zeros {
		if err := c.X(q); err != nil {
			return err
		}
	}
	if err := c.CZ(all...); err != nil {
		return err
	}
	for _, q := range zeros {
		if err := c.X(q); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDiffusion appends Grover's diffusion operator over the listed qubits:
// Hadamards into the transformed basis, a conditional phase flip marking the
// all-zero state (the same construction the oracle uses), and Hadamards
// back. The net effect is a reflection of the amplitude vector about its
// mean, which raises the marked state's amplitude on every oracle/diffusion
// round.
func ApplyDiffusion(c *quantum.Circuit, qubits []int) error {
	for _, q := range qubits {
		if err := c.H(q); err != nil {
			return err
		}
	}
	for _, q := range qubits {
		if err := c.X(q); err != nil {
			return err
		}
	}
	if err := c.CZ(qubits...); err != nil {
		return err
	}
	for _, q := range qubits {
		if err := c.X(q); err != nil {
			return err
		}
	}
	for _, q := range qubits {
		if err := c.H(q); err != nil {
			return err
		}
	}
	return nil
}

// OptimalIterations returns the number of oracle/diffusion repetitions that
// approximately maximizes the probability of measuring the marked state in a
// single-target search over m states, about π/4·√m. The amplitude rotation
// is periodic, so overshooting degrades the success probability just as
// undershooting does. A one-state space needs no amplification at all.
func OptimalIterations(m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("search space size %d: %w", m, grover.ErrInvalidSearchSpace)
	}
	// √(m-1) rather than √m: identical asymptotics, but the rounded count
	// stays at the true optimum for small spaces (m=4 wants 1 round, not 2)
	// and a one-state space naturally gets 0.
	return int(math.Round(math.Pi / 4 * math.Sqrt(float64(m-1)))), nil
}

// BuildCircuit assembles the full search circuit for the given target
// pattern: uniform encoding, iterations rounds of oracle plus diffusion, and
// a measurement of every qubit into its classical bit.
func BuildCircuit(target string, iterations int) (*quantum.Circuit, error) {
	if iterations < 0 {
		return nil, grover.ErrInvalidIterations
	}
	n := len(target)
	if n == 0 {
		return nil, grover.ErrEmptyTarget
	}

	c, err := quantum.NewCircuit(n, n)
	if err != nil {
		return nil, err
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	if err := PrepareUniform(c, all); err != nil {
		return nil, err
	}
	for i := 0; i < iterations; i++ {
		if err := ApplyOracle(c, target); err != nil {
			return nil, err
		}
		if err := ApplyDiffusion(c, all); err != nil {
			return nil, err
		}
	}
	if err := c.MeasureAll(); err != nil {
		return nil, err
	}
	return c, nil
}

// checkPattern validates an oracle pattern against a circuit's register.
func checkPattern(c *quantum.Circuit, pattern string) error {
	if pattern == "" {
		return grover.ErrEmptyTarget
	}
	if len(pattern) != c.NumQubits() {
		return fmt.Errorf("pattern %q over %d qubits: %w", pattern, c.NumQubits(), grover.ErrInvalidTarget)
	}
	for _, ch := range pattern {
		if ch != '0' && ch != '1' {
			return grover.ErrInvalidTarget
		}
	}
	return nil
}
