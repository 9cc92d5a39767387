// core/energy/energy.go
// Hamiltonians for scalar-state Monte Carlo. A Model assigns an energy to
// a state; lower energy means higher statistical weight at a given
// temperature. This package is a pure leaf: no randomness, no errors.
package energy

// Model is a Hamiltonian over a one-dimensional continuous state.
type Model interface {
	Energy(x float64) float64
}

// Func adapts a plain function to a Model, so any potential can be
// substituted without touching the transition engine.
type Func func(float64) float64

func (f Func) Energy(x float64) float64 { return f(x) }

// Quadratic is the Gaussian Hamiltonian H(x) = x².
type Quadratic struct{}

func (Quadratic) Energy(x float64) float64 { return x * x }

// Delta returns m.Energy(xNew) - m.Energy(xOld).
func Delta(m Model, xOld, xNew float64) float64 {
	return m.Energy(xNew) - m.Energy(xOld)
}
