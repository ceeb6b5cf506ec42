// Package grover defines the request and result types for a Grover search
// run, along with their validation rules.
package grover

import (
	"time"

	"github.com/google/uuid"
)

// DefaultShots is the number of repeated trials used when a request leaves
// the shot count unset.
const DefaultShots = 1024

// MaxShots bounds a single run; anything larger is almost certainly a
// mistyped request rather than a real experiment.
const MaxShots = 1 << 20

// SearchRequest describes one Grover search run: which basis state to mark
// and how many trials to sample.
type SearchRequest struct {
	// Target is the marked basis state as a bit pattern, e.g. "11".
	// Character i is the value of qubit i; the pattern length fixes the
	// register width.
	Target string `json:"target"`

	// Shots is the number of independent trials. Zero selects DefaultShots.
	Shots int `json:"shots,omitempty"`

	// Iterations overrides the number of oracle/diffusion repetitions. Nil
	// selects the optimal count for the search-space size. Zero is a valid
	// override: the circuit then samples the bare uniform superposition.
	Iterations *int `json:"iterations,omitempty"`
}

// SearchResult is the outcome of one run: the frequency table over measured
// bit-strings plus enough metadata to reproduce the run.
type SearchResult struct {
	RunID       uuid.UUID      `json:"run_id"`
	Backend     string         `json:"backend"`
	Target      string         `json:"target"`
	Qubits      int            `json:"qubits"`
	SearchSpace int            `json:"search_space"`
	Iterations  int            `json:"iterations"`
	Shots       int            `json:"shots"`
	Counts      map[string]int `json:"counts"`

	// TargetProbability is the empirical probability of measuring Target.
	TargetProbability float64 `json:"target_probability"`

	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

// Validate checks a search request and fills in defaults.
func (r *SearchRequest) Validate() error {
	if r.Target == "" {
		return ErrEmptyTarget
	}
	for _, ch := range r.Target {
		if ch != '0' && ch != '1' {
			return ErrInvalidTarget
		}
	}

	if r.Shots == 0 {
		r.Shots = DefaultShots
	}
	if r.Shots < 1 || r.Shots > MaxShots {
		return ErrInvalidShots
	}

	if r.Iterations != nil && *r.Iterations < 0 {
		return ErrInvalidIterations
	}

	return nil
}

// GroverError is the error type for request validation and run-level
// failures.
type GroverError struct {
	Message string
}

func (e *GroverError) Error() string {
	return e.Message
}

var (
	ErrEmptyTarget        = &GroverError{"target pattern must not be empty"}
	ErrInvalidTarget      = &GroverError{"target pattern may contain only '0' and '1'"}
	ErrInvalidShots       = &GroverError{"shot count out of range"}
	ErrInvalidIterations  = &GroverError{"iteration count must be non-negative"}
	ErrInvalidSearchSpace = &GroverError{"search space size must be at least 1"}
	ErrNoBackend          = &GroverError{"no execution backend provided"}
)
