package quantum

import (
	"errors"
	"strings"
	"testing"
)

// TestNewCircuit tests register width validation
func TestNewCircuit(t *testing.T) {
	tests := []struct {
		name         string
		numQubits    int
		numClassical int
		wantErr      bool
	}{
		{"two qubits", 2, 2, false},
		{"single qubit", 1, 1, false},
		{"zero qubits", 0, 2, true},
		{"negative qubits", -1, 2, true},
		{"zero classical bits", 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircuit(tt.numQubits, tt.numClassical)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCircuit failed: %v", err)
			}
			if c.NumQubits() != tt.numQubits {
				t.Errorf("expected %d qubits, got %d", tt.numQubits, c.NumQubits())
			}
			if c.Len() != 0 {
				t.Errorf("new circuit should be empty, has %d ops", c.Len())
			}
		})
	}
}

// TestGateIndexValidation tests that out-of-range indices are rejected
func TestGateIndexValidation(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *Circuit) error
		want  error
	}{
		{"H out of range", func(c *Circuit) error { return c.H(2) }, ErrQubitOutOfRange},
		{"H negative", func(c *Circuit) error { return c.H(-1) }, ErrQubitOutOfRange},
		{"X out of range", func(c *Circuit) error { return c.X(5) }, ErrQubitOutOfRange},
		{"Z out of range", func(c *Circuit) error { return c.Z(2) }, ErrQubitOutOfRange},
		{"CZ out of range", func(c *Circuit) error { return c.CZ(0, 2) }, ErrQubitOutOfRange},
		{"CZ duplicate", func(c *Circuit) error { return c.CZ(1, 1) }, ErrDuplicateQubit},
		{"CZ empty", func(c *Circuit) error { return c.CZ() }, ErrNoQubits},
		{"measure qubit out of range", func(c *Circuit) error { return c.Measure(2, 0) }, ErrQubitOutOfRange},
		{"measure classical out of range", func(c *Circuit) error { return c.Measure(0, 2) }, ErrClassicalOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircuit(2, 2)
			if err != nil {
				t.Fatalf("NewCircuit failed: %v", err)
			}
			err = tt.apply(c)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if c.Len() != 0 {
				t.Errorf("failed append must not modify the circuit, has %d ops", c.Len())
			}
		})
	}
}

// TestGateAfterMeasure tests that the circuit stays in gates-then-measure shape
func TestGateAfterMeasure(t *testing.T) {
	c, err := NewCircuit(2, 2)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	if err := c.H(0); err != nil {
		t.Fatalf("H failed: %v", err)
	}
	if err := c.Measure(0, 0); err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if err := c.H(1); !errors.Is(err, ErrGateAfterMeasure) {
		t.Errorf("expected ErrGateAfterMeasure, got %v", err)
	}
	// Further measurements are still fine.
	if err := c.Measure(1, 1); err != nil {
		t.Errorf("second Measure failed: %v", err)
	}
}

// TestQASM tests OpenQASM rendering of a small search circuit
func TestQASM(t *testing.T) {
	c, err := NewCircuit(2, 2)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	for _, step := range []error{
		c.H(0), c.H(1),
		c.CZ(0, 1),
		c.X(0), c.Z(1),
		c.MeasureAll(),
	} {
		if step != nil {
			t.Fatalf("building circuit: %v", step)
		}
	}

	qasm, err := c.QASM()
	if err != nil {
		t.Fatalf("QASM failed: %v", err)
	}

	for _, want := range []string{
		"OPENQASM 2.0;",
		"qreg q[2];",
		"creg c[2];",
		"h q[0];",
		"h q[1];",
		"cz q[0],q[1];",
		"x q[0];",
		"z q[1];",
		"measure q[0] -> c[0];",
		"measure q[1] -> c[1];",
	} {
		if !strings.Contains(qasm, want) {
			t.Errorf("QASM output missing %q:\n%s", want, qasm)
		}
	}
}

// TestQASMSingleQubitConditionalPhase tests that CZ on one qubit renders as z
func TestQASMSingleQubitConditionalPhase(t *testing.T) {
	c, err := NewCircuit(1, 1)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	if err := c.CZ(0); err != nil {
		t.Fatalf("CZ failed: %v", err)
	}
	if err := c.MeasureAll(); err != nil {
		t.Fatalf("MeasureAll failed: %v", err)
	}

	qasm, err := c.QASM()
	if err != nil {
		t.Fatalf("QASM failed: %v", err)
	}
	if !strings.Contains(qasm, "z q[0];") {
		t.Errorf("expected single-qubit conditional phase to render as z:\n%s", qasm)
	}
}

// TestQASMWideConditionalPhase tests the OpenQASM arity limit
func TestQASMWideConditionalPhase(t *testing.T) {
	c, err := NewCircuit(3, 3)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	if err := c.CZ(0, 1, 2); err != nil {
		t.Fatalf("CZ failed: %v", err)
	}
	if err := c.MeasureAll(); err != nil {
		t.Fatalf("MeasureAll failed: %v", err)
	}

	if _, err := c.QASM(); err == nil {
		t.Error("expected error rendering a 3-qubit conditional phase to OpenQASM 2.0")
	}
}

// TestMeasureAllWidth tests the classical register width requirement
func TestMeasureAllWidth(t *testing.T) {
	c, err := NewCircuit(3, 2)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	if err := c.MeasureAll(); !errors.Is(err, ErrClassicalOutOfRange) {
		t.Errorf("expected ErrClassicalOutOfRange, got %v", err)
	}
}
