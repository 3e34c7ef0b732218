// Package mazegen defines options and sentinel errors for maze generation.
package mazegen

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazegrid/step"
)

// ErrEmptyGrid is the defensive guard for a generation pass that carved no
// walkable cell. Unreachable with the current parameters (the seed cell is
// always carved), but endpoint selection must never proceed past it.
var ErrEmptyGrid = errors.New("mazegen: no walkable cell after carving")

// defaultSeed is the fixed seed substituted when callers pass seed==0,
// keeping the "zero seed" case reproducible instead of accidentally
// falling back to a time-based source.
const defaultSeed int64 = 1

// terrain draw thresholds over Intn(100): <waterBelow water, <mudBelow mud,
// otherwise grass.
const (
	waterBelow = 15
	mudBelow   = 35
)

// Option configures maze generation via functional arguments.
type Option func(*Options)

// Options holds parameters for a single Generate call.
type Options struct {
	// Seed pins the random source when hasSeed is set; seed==0 maps to
	// defaultSeed so the zero value stays deterministic.
	Seed int64

	// Rand, if non-nil, is used verbatim and takes precedence over Seed.
	// math/rand.Rand is not goroutine-safe; do not share it across
	// concurrent Generate calls.
	Rand *rand.Rand

	// OnStep receives one Carve event per cell opened. Nil means no
	// notifications (run to completion with zero suspension points).
	OnStep step.Func

	hasSeed bool
}

// DefaultOptions returns Options with no pinned seed, no injected source
// and no step notifications.
func DefaultOptions() Options {
	return Options{OnStep: step.Nop}
}

// WithSeed pins the random source to a deterministic stream.
// The same seed and dimensions always yield a bit-identical grid.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.hasSeed = true
	}
}

// WithRand injects a random source directly, overriding WithSeed.
// A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnStep registers a callback receiving one Carve event per opened
// cell. A nil callback is ignored.
func WithOnStep(fn step.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// rng resolves the effective random source for this call:
// injected source > pinned seed > fresh time-seeded source.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	if o.hasSeed {
		s := o.Seed
		if s == 0 {
			s = defaultSeed
		}

		return rand.New(rand.NewSource(s))
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
