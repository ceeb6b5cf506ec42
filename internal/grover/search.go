package grover

import (
	"fmt"
	"time"

	"github.com/quantalab/grover/internal/models/grover"
	"github.com/quantalab/grover/internal/quantum"
)

// Search performs one complete Grover run: validate the request, derive the
// iteration count when the request leaves it unset, build the circuit,
// execute it on the supplied backend, and package the frequency table. The
// backend is an explicit capability rather than a process-wide default so
// that callers and tests choose their own executor.
func Search(backend quantum.Backend, req *grover.SearchRequest) (*grover.SearchResult, error) {
	if backend == nil {
		return nil, grover.ErrNoBackend
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := len(req.Target)
	searchSpace := 1 << n

	iterations := 0
	if req.Iterations != nil {
		iterations = *req.Iterations
	} else {
		var err error
		iterations, err = OptimalIterations(searchSpace)
		if err != nil {
			return nil, err
		}
	}

	circuit, err := BuildCircuit(req.Target, iterations)
	if err != nil {
		return nil, fmt.Errorf("building circuit for target %q: %w", req.Target, err)
	}

	started := time.Now()
	res, err := backend.Execute(circuit, req.Shots)
	if err != nil {
		return nil, fmt.Errorf("executing on %s: %w", backend.Name(), err)
	}

	return &grover.SearchResult{
		RunID:             res.JobID,
		Backend:           res.Backend,
		Target:            req.Target,
		Qubits:            n,
		SearchSpace:       searchSpace,
		Iterations:        iterations,
		Shots:             res.Shots,
		Counts:            res.Counts,
		TargetProbability: SuccessProbability(res.Counts, req.Target),
		StartedAt:         started,
		DurationMs:        time.Since(started).Milliseconds(),
	}, nil
}
