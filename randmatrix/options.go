// SPDX-License-Identifier: MIT
// Package: signtable/randmatrix
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil source);
//     Generate itself never panics on user input.
//   • Determinism is explicit: WithSeed or WithSource. Without either, every
//     Generate call gets its own clock-seeded source, so no state is shared
//     between calls.

package randmatrix

import (
	"math/rand"
	"time"
)

// Option customizes a single Generate call.
type Option func(*config)

// config aggregates the knobs used by Generate. Passed by value.
type config struct {
	src Source
}

// WithSource sets the uniform [0,1) sampler.
// Panics on nil to surface programmer error early.
func WithSource(src Source) Option {
	if src == nil {
		panic("randmatrix: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithSeed creates a deterministic *rand.Rand from seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies opts in order (last wins) and resolves a missing source
// to a freshly seeded one.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
