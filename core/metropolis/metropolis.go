// core/metropolis/metropolis.go
package metropolis

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"metro-core/energy"
)

// Proposal selects how the uniform perturbation maps onto the candidate.
type Proposal int

const (
	// Scaled reproduces the reference behavior: the draw U ~ Uniform(-h, h)
	// is multiplied by h again before being added, so the effective window
	// is [x-h², x+h²] rather than [x-h, x+h]. Likely an accident upstream,
	// but it is the default so fixed-seed runs match the reference.
	Scaled Proposal = iota
	// Linear is the conventional window: candidate = x + U, U ~ Uniform(-h, h).
	Linear
)

// Config holds sampler parameters, fixed for the duration of a run.
type Config struct {
	Model    energy.Model // nil selects the quadratic Hamiltonian
	StepSize float64      // h ≥ 0; 0 degenerates to identity proposals
	Beta     float64      // inverse temperature; 0 accepts every proposal
	Proposal Proposal
	Seed     uint64 // 0 derives a seed from the current time
}

// Sampler performs single Metropolis updates. Each Sampler owns its
// generator, so samplers with distinct seeds never share draws and a chain
// is reproducible from its seed alone.
type Sampler struct {
	cfg     Config
	rng     *rand.Rand
	perturb distuv.Uniform
}

// New creates a Sampler for c.
func New(c Config) *Sampler {
	if c.Model == nil {
		c.Model = energy.Quadratic{}
	}
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	return &Sampler{
		cfg:     c,
		rng:     rng,
		perturb: distuv.Uniform{Min: -c.StepSize, Max: c.StepSize, Src: rng},
	}
}

// Propose draws a candidate state around x. Consumes exactly one draw.
func (s *Sampler) Propose(x float64) float64 {
	u := s.perturb.Rand()
	if s.cfg.Proposal == Linear {
		return x + u
	}
	return x + s.cfg.StepSize*u
}

// AcceptProbability returns exp(-β·ΔH) for the move xOld→xNew. math.Exp
// saturates to +Inf on overflow and 0 on underflow, so extreme energy
// differences resolve to unconditional acceptance or near-certain
// rejection without ever signalling an error.
func (s *Sampler) AcceptProbability(xOld, xNew float64) float64 {
	return math.Exp(-s.cfg.Beta * energy.Delta(s.cfg.Model, xOld, xNew))
}

// Step performs one Metropolis update: propose, then accept with
// probability min(1, exp(-β·ΔH)). On rejection the previous state is
// returned unchanged.
func (s *Sampler) Step(x float64) (float64, bool) {
	candidate := s.Propose(x)
	p := s.AcceptProbability(x, candidate)
	// p > 1 must skip the uniform draw entirely; consuming a draw for a
	// downhill move would desynchronize fixed-seed trajectories from the
	// reference sequence of draws.
	if p > 1 {
		return candidate, true
	}
	if s.rng.Float64() < p {
		return candidate, true
	}
	return x, false
}
