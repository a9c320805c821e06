// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rng provides the seeded randomness context shared by every
// generator. All town, people, and article sampling draws flow through one
// Context per process invocation, so a fixed seed replays the exact same
// datasets. There is no package-level random state.
package rng

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidWeights indicates a degenerate weighted draw: a negative weight,
// an empty or mismatched weight list, or all weights zero.
var ErrInvalidWeights = errors.New("invalid weights")

// Context owns a seeded pseudo-random source. It is not safe for concurrent
// use; generation is single-threaded by design.
type Context struct {
	rand *rand.Rand
	seed int64
}

// New creates a Context seeded with the given value. A zero seed derives one
// from the clock, so runs are reproducible only when an explicit seed is
// supplied.
func New(seed int64) *Context {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Context{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed this context was initialized with.
func (c *Context) Seed() int64 { return c.seed }

// Intn returns a uniform int in [0, n).
func (c *Context) Intn(n int) int { return c.rand.Intn(n) }

// IntBetween returns a uniform int in [min, max], inclusive on both ends.
func (c *Context) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	return min + c.rand.Intn(max-min+1)
}

// Float64Between returns a uniform float64 in [min, max).
func (c *Context) Float64Between(min, max float64) float64 {
	return min + c.rand.Float64()*(max-min)
}

// Bernoulli returns true with probability p.
func (c *Context) Bernoulli(p float64) bool {
	return c.rand.Float64() < p
}

// Pick returns a uniformly chosen element of options.
func Pick[T any](c *Context, options []T) T {
	return options[c.rand.Intn(len(options))]
}

// WeightedIndex returns an index into weights chosen with probability
// proportional to each weight. Weights must be non-negative with at least
// one positive entry; anything else returns ErrInvalidWeights.
func (c *Context) WeightedIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: empty weight list", ErrInvalidWeights)
	}

	var total float64
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: negative weight %g at index %d", ErrInvalidWeights, w, i)
		}
		total += w
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}

	r := c.rand.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i, nil
		}
	}
	// Floating-point edge: r landed exactly on the total.
	return len(weights) - 1, nil
}

// WeightedPick returns an element of options chosen by the paired weights.
// The two slices must be the same length.
func WeightedPick[T any](c *Context, options []T, weights []float64) (T, error) {
	var zero T
	if len(options) != len(weights) {
		return zero, fmt.Errorf("%w: %d options for %d weights", ErrInvalidWeights, len(options), len(weights))
	}
	i, err := c.WeightedIndex(weights)
	if err != nil {
		return zero, err
	}
	return options[i], nil
}

// Sample returns n elements drawn uniformly without replacement. When n
// exceeds the pool size the whole pool is returned, in random order.
func Sample[T any](c *Context, pool []T, n int) []T {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for _, idx := range c.rand.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}
