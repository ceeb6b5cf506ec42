package quantum

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Execution errors returned by backends.
var (
	ErrInvalidShots  = errors.New("shot count must be positive")
	ErrTooManyQubits = errors.New("register exceeds backend capacity")
	ErrNotMeasured   = errors.New("circuit measures no qubits")
)

// Backend executes finished circuits. Implementations must treat the circuit
// as read-only: a circuit handed to Execute is immutable from the caller's
// point of view.
type Backend interface {
	// Name returns a human-readable backend identifier.
	Name() string

	// MaxQubits returns the widest register the backend accepts.
	MaxQubits() int

	// IsSimulator returns true for classical simulators, false for hardware.
	IsSimulator() bool

	// Execute runs the circuit for the given number of shots and returns the
	// frequency table of observed classical bit-strings.
	Execute(c *Circuit, shots int) (*Result, error)
}

// Result is the outcome of one backend execution: shots independent samples
// of the same fixed circuit, tallied by classical bit-string. The counts
// always sum to Shots.
type Result struct {
	JobID   uuid.UUID      `json:"job_id"`
	Backend string         `json:"backend"`
	Shots   int            `json:"shots"`
	Counts  map[string]int `json:"counts"`
}

// SimulatorMaxQubits bounds the register width of the local simulator. The
// amplitude vector is 16 bytes per basis state, so 20 qubits tops out at
// 16 MiB.
const SimulatorMaxQubits = 20

// SimulatorBackend is an exact statevector simulator. Gate application is
// deterministic unitary algebra; the only randomness is measurement
// sampling, which draws from the injected source so that a fixed seed gives
// reproducible counts.
type SimulatorBackend struct {
	name string
	rand *rand.Rand
}

// NewSimulatorBackend creates a local statevector simulator. If r is nil a
// time-seeded source is used.
func NewSimulatorBackend(r *rand.Rand) *SimulatorBackend {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatorBackend{
		name: "statevector-simulator",
		rand: r,
	}
}

// Name returns the simulator's identifier.
func (s *SimulatorBackend) Name() string { return s.name }

// MaxQubits returns the simulator's register limit.
func (s *SimulatorBackend) MaxQubits() int { return SimulatorMaxQubits }

// IsSimulator returns true.
func (s *SimulatorBackend) IsSimulator() bool { return true }

// Execute applies every gate in order to the amplitude vector, then samples
// the measurement distribution once per shot. Qubits without a measurement
// leave their classical bit at 0.
func (s *SimulatorBackend) Execute(c *Circuit, shots int) (*Result, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shots %d: %w", shots, ErrInvalidShots)
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCircuit
	}
	if c.NumQubits() > SimulatorMaxQubits {
		return nil, fmt.Errorf("%d qubits, limit %d: %w", c.NumQubits(), SimulatorMaxQubits, ErrTooManyQubits)
	}
	if !c.Measured() {
		return nil, ErrNotMeasured
	}

	sv := newStatevector(c.NumQubits())
	// qubit index -> classical bit, from the measurement operations.
	mapping := make(map[int]int)
	for _, op := range c.ops {
		switch op.kind {
		case gateH:
			sv.hadamard(op.qubits[0])
		case gateX:
			sv.flip(op.qubits[0])
		case gateZ:
			sv.phaseFlip(1 << op.qubits[0])
		case gateCZ:
			mask := 0
			for _, q := range op.qubits {
				mask |= 1 << q
			}
			sv.phaseFlip(mask)
		case gateMeasure:
			mapping[op.qubits[0]] = op.cbit
		}
	}

	counts := make(map[string]int)
	outcome := make([]byte, c.NumClassical())
	for shot := 0; shot < shots; shot++ {
		idx := sv.sample(s.rand)
		for i := range outcome {
			outcome[i] = '0'
		}
		for q, cb := range mapping {
			if idx>>q&1 == 1 {
				outcome[cb] = '1'
			}
		}
		counts[string(outcome)]++
	}

	return &Result{
		JobID:   uuid.New(),
		Backend: s.name,
		Shots:   shots,
		Counts:  counts,
	}, nil
}
