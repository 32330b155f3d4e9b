// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	rng    *rand.Rand // nil unless WithSeed/WithRand
	layout bool       // assign coordinates to deterministic fixtures
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed uses a fresh math/rand source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLayout places fixture vertices in the unit square: Cycle, Star and
// Complete on a circle, Path on a horizontal line, Grid on a lattice.
// RandomGeometric always carries coordinates.
func WithLayout() BuilderOption {
	return func(c *builderConfig) { c.layout = true }
}
