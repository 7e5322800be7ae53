// SPDX-License-Identifier: MIT

// Package rowgen provides seeded random row generators for
// matrix.(*Dense).RandomInit and RandomInitZeroBiased.
//
// Row draws every element from a continuous uniform distribution on
// [min, max]. ZeroBiasedRow draws from a Laplace distribution centred on
// zero, so most values sit near 0 with a thin symmetric tail; values are
// clamped into [min, max] so both variants share one range.
//
// A Generator is safe for concurrent use. Two generators built with the
// same options produce the same sequence of rows.
package rowgen

import (
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	// DefaultSeed seeds the PCG source when WithSeed is not given.
	DefaultSeed uint64 = 1

	// DefaultMin and DefaultMax bound every generated value.
	DefaultMin = -1.0
	DefaultMax = 1.0

	// DefaultZeroScale is the Laplace scale (b) of ZeroBiasedRow.
	DefaultZeroScale = 0.1

	// pcgStream is the second PCG word; the seed selects the sequence.
	pcgStream uint64 = 0x9e3779b97f4a7c15
)

const (
	panicBoundsInvalid = "rowgen: WithBounds: min and max must be finite with min < max"
	panicScaleInvalid  = "rowgen: WithZeroScale: scale must be finite and > 0"
)

// Option configures a Generator.
type Option func(*config)

type config struct {
	seed      uint64
	min, max  float64
	zeroScale float64
}

// WithSeed selects a reproducible sequence.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithBounds sets the value range [lo, hi]. Panics unless lo < hi, both finite.
func WithBounds(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicBoundsInvalid)
	}

	return func(c *config) { c.min, c.max = lo, hi }
}

// WithZeroScale sets the Laplace scale of ZeroBiasedRow. Panics unless scale > 0.
func WithZeroScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicScaleInvalid)
	}

	return func(c *config) { c.zeroScale = scale }
}

// Generator implements matrix.RowGenerator.
type Generator struct {
	mu      sync.Mutex
	uniform distuv.Uniform
	laplace distuv.Laplace
	min     float64
	max     float64
}

var _ matrix.RowGenerator = (*Generator)(nil)

// New builds a Generator from defaults overridden by opts.
func New(opts ...Option) *Generator {
	cfg := config{
		seed:      DefaultSeed,
		min:       DefaultMin,
		max:       DefaultMax,
		zeroScale: DefaultZeroScale,
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	src := rand.NewPCG(cfg.seed, pcgStream)

	return &Generator{
		uniform: distuv.Uniform{Min: cfg.min, Max: cfg.max, Src: src},
		laplace: distuv.Laplace{Mu: 0, Scale: cfg.zeroScale, Src: src},
		min:     cfg.min,
		max:     cfg.max,
	}
}

// Row returns dim values drawn uniformly from [min, max].
// A non-positive dim yields an empty row.
func (g *Generator) Row(dim int) []float64 {
	if dim <= 0 {
		return []float64{}
	}
	out := make([]float64, dim)
	g.mu.Lock()
	for i := range out {
		out[i] = g.uniform.Rand()
	}
	g.mu.Unlock()

	return out
}

// ZeroBiasedRow returns dim Laplace(0, scale) values clamped into [min, max].
// A non-positive dim yields an empty row.
func (g *Generator) ZeroBiasedRow(dim int) []float64 {
	if dim <= 0 {
		return []float64{}
	}
	out := make([]float64, dim)
	g.mu.Lock()
	for i := range out {
		out[i] = clamp(g.laplace.Rand(), g.min, g.max)
	}
	g.mu.Unlock()

	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
