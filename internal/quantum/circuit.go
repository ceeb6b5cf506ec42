// Package quantum provides the circuit model and execution backends used by
// the Grover search pipeline. A Circuit is an append-only program over a
// fixed-width qubit register plus a classical register for measurement
// outcomes; backends execute a finished circuit for a number of shots and
// return a frequency table over the observed bit-strings.
package quantum

import (
	"errors"
	"fmt"
	"strings"
)

// Circuit construction errors. Append operations validate their index
// arguments eagerly so that a malformed circuit is never handed to a backend.
var (
	ErrQubitOutOfRange     = errors.New("qubit index out of range")
	ErrClassicalOutOfRange = errors.New("classical bit index out of range")
	ErrDuplicateQubit      = errors.New("duplicate qubit index")
	ErrNoQubits            = errors.New("operation requires at least one qubit")
	ErrGateAfterMeasure    = errors.New("gate appended after measurement")
	ErrEmptyCircuit        = errors.New("circuit contains no operations")
)

type gateKind int

const (
	gateH gateKind = iota
	gateX
	gateZ
	gateCZ
	gateMeasure
)

// operation is a single entry in the circuit's instruction sequence. For
// gateMeasure, qubits holds exactly one index and cbit names the classical
// bit that receives the outcome.
type operation struct {
	kind   gateKind
	qubits []int
	cbit   int
}

// Circuit is an ordered sequence of gate operations over a fixed qubit
// register. Construction is append-only: gates and measurements are added one
// at a time and never removed or reordered. Once a measurement has been
// appended no further gates may be added, which keeps the program in the
// gates-then-measure shape every backend expects.
type Circuit struct {
	numQubits    int
	numClassical int
	ops          []operation
	measured     bool
}

// NewCircuit creates an empty circuit over numQubits qubits and numClassical
// classical bits. Both widths must be positive.
func NewCircuit(numQubits, numClassical int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("quantum register width %d: %w", numQubits, ErrNoQubits)
	}
	if numClassical < 1 {
		return nil, fmt.Errorf("classical register width %d: %w", numClassical, ErrClassicalOutOfRange)
	}
	return &Circuit{
		numQubits:    numQubits,
		numClassical: numClassical,
	}, nil
}

// NumQubits returns the width of the quantum register.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumClassical returns the width of the classical register.
func (c *Circuit) NumClassical() int { return c.numClassical }

// Len returns the number of appended operations, measurements included.
func (c *Circuit) Len() int { return len(c.ops) }

// Measured reports whether the circuit contains at least one measurement.
func (c *Circuit) Measured() bool { return c.measured }

func (c *Circuit) checkQubit(q int) error {
	if q < 0 || q >= c.numQubits {
		return fmt.Errorf("qubit %d of %d: %w", q, c.numQubits, ErrQubitOutOfRange)
	}
	return nil
}

func (c *Circuit) appendGate(kind gateKind, qubits ...int) error {
	if c.measured {
		return ErrGateAfterMeasure
	}
	for _, q := range qubits {
		if err := c.checkQubit(q); err != nil {
			return err
		}
	}
	c.ops = append(c.ops, operation{kind: kind, qubits: qubits, cbit: -1})
	return nil
}

// H appends a Hadamard gate on qubit q. Applied to |0⟩ it produces the
// uniform superposition (|0⟩+|1⟩)/√2, which is how the search-space encoder
// spreads amplitude across every basis state.
func (c *Circuit) H(q int) error {
	return c.appendGate(gateH, q)
}

// X appends a bit-flip (NOT) gate on qubit q.
func (c *Circuit) X(q int) error {
	return c.appendGate(gateX, q)
}

// Z appends a phase-inversion gate on qubit q: the amplitude of every basis
// state in which q is 1 is multiplied by -1.
func (c *Circuit) Z(q int) error {
	return c.appendGate(gateZ, q)
}

// CZ appends a conditional phase flip across the given qubit subset: the
// amplitude of every basis state in which all listed qubits are 1 is
// multiplied by -1. A single-qubit subset degenerates to Z. The indices must
// be distinct.
func (c *Circuit) CZ(qubits ...int) error {
	if len(qubits) == 0 {
		return ErrNoQubits
	}
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if seen[q] {
			return fmt.Errorf("qubit %d: %w", q, ErrDuplicateQubit)
		}
		seen[q] = true
	}
	return c.appendGate(gateCZ, qubits...)
}

// Measure appends a measurement of qubit q into classical bit cb.
func (c *Circuit) Measure(q, cb int) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	if cb < 0 || cb >= c.numClassical {
		return fmt.Errorf("classical bit %d of %d: %w", cb, c.numClassical, ErrClassicalOutOfRange)
	}
	c.ops = append(c.ops, operation{kind: gateMeasure, qubits: []int{q}, cbit: cb})
	c.measured = true
	return nil
}

// MeasureAll measures every qubit into the classical bit with the same index.
// Requires the classical register to be at least as wide as the quantum one.
func (c *Circuit) MeasureAll() error {
	if c.numClassical < c.numQubits {
		return fmt.Errorf("classical register width %d < %d qubits: %w",
			c.numClassical, c.numQubits, ErrClassicalOutOfRange)
	}
	for q := 0; q < c.numQubits; q++ {
		if err := c.Measure(q, q); err != nil {
			return err
		}
	}
	return nil
}

// QASM renders the circuit as an OpenQASM 2.0 program for submission to
// remote hardware. Conditional phase flips over more than two qubits have no
// direct OpenQASM 2.0 gate and are rejected.
func (c *Circuit) QASM() (string, error) {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.numQubits)
	fmt.Fprintf(&b, "creg c[%d];\n\n", c.numClassical)

	for _, op := range c.ops {
		switch op.kind {
		case gateH:
			fmt.Fprintf(&b, "h q[%d];\n", op.qubits[0])
		case gateX:
			fmt.Fprintf(&b, "x q[%d];\n", op.qubits[0])
		case gateZ:
			fmt.Fprintf(&b, "z q[%d];\n", op.qubits[0])
		case gateCZ:
			switch len(op.qubits) {
			case 1:
				fmt.Fprintf(&b, "z q[%d];\n", op.qubits[0])
			case 2:
				fmt.Fprintf(&b, "cz q[%d],q[%d];\n", op.qubits[0], op.qubits[1])
			default:
				return "", fmt.Errorf("conditional phase over %d qubits has no OpenQASM 2.0 gate", len(op.qubits))
			}
		case gateMeasure:
			fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", op.qubits[0], op.cbit)
		}
	}

	return b.String(), nil
}
