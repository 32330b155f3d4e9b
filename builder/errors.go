// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates invalid grid dimensions.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an out-of-range parameter (radius, LCC ratio).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates the graph could not be built as requested:
// a nil constructor, a core error, or a radius search that found no fit.
var ErrConstructFailed = errors.New("builder: construction failed")
