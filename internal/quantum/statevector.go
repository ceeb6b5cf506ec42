package quantum

import (
	"math"
	"math/rand"
)

// statevector holds the full 2^n complex amplitude vector of an n-qubit
// register. Basis-state index i assigns qubit q the bit (i>>q)&1. All gate
// applications are exact unitary updates; the only approximation anywhere is
// the float64 arithmetic itself.
type statevector struct {
	n    int
	amps []complex128
}

// newStatevector returns an n-qubit register initialized to |00...0⟩.
func newStatevector(n int) *statevector {
	sv := &statevector{
		n:    n,
		amps: make([]complex128, 1<<n),
	}
	sv.amps[0] = 1
	return sv
}

// hadamard applies H on qubit q, mixing each pair of basis states that
// differ only in bit q.
func (sv *statevector) hadamard(q int) {
	mask := 1 << q
	inv := complex(1/math.Sqrt2, 0)
	for i := range sv.amps {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a, b := sv.amps[i], sv.amps[j]
		sv.amps[i] = (a + b) * inv
		sv.amps[j] = (a - b) * inv
	}
}

// flip applies X on qubit q by swapping amplitudes across bit q.
func (sv *statevector) flip(q int) {
	mask := 1 << q
	for i := range sv.amps {
		if i&mask == 0 {
			j := i | mask
			sv.amps[i], sv.amps[j] = sv.amps[j], sv.amps[i]
		}
	}
}

// phaseFlip negates the amplitude of every basis state in which all qubits
// in mask are 1. With a single-bit mask this is Z on that qubit.
func (sv *statevector) phaseFlip(mask int) {
	for i := range sv.amps {
		if i&mask == mask {
			sv.amps[i] = -sv.amps[i]
		}
	}
}

// sample draws one basis-state index from the measurement distribution
// |amp|^2 using the provided randomness source.
func (sv *statevector) sample(r *rand.Rand) int {
	u := r.Float64()
	cum := 0.0
	for i, a := range sv.amps {
		cum += real(a)*real(a) + imag(a)*imag(a)
		if u < cum {
			return i
		}
	}
	// Rounding can leave cum a hair under 1; charge the tail state.
	return len(sv.amps) - 1
}
