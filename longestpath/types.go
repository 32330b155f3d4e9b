package longestpath

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmax/core"
)

// Sentinel errors for path search.
var (
	// ErrInvalidInput is returned when the vertex set is empty or a start/goal
	// vertex is not part of it.
	ErrInvalidInput = errors.New("longestpath: invalid input")

	// ErrUnknownStrategy is returned by ParseKind and New for unknown names.
	ErrUnknownStrategy = errors.New("longestpath: unknown strategy")

	// ErrUnknownHeuristic is returned by ParseHeuristic for unknown names.
	ErrUnknownHeuristic = errors.New("longestpath: unknown heuristic")

	// ErrNotSimple is returned by Validate when a vertex repeats.
	ErrNotSimple = errors.New("longestpath: path repeats a vertex")

	// ErrNotAdjacent is returned by Validate when consecutive vertices share no edge.
	ErrNotAdjacent = errors.New("longestpath: consecutive vertices are not adjacent")
)

// Path is an ordered sequence of distinct vertices, consecutive ones adjacent.
// A nil Path means "no path found".
type Path[V cmp.Ordered] []V

// Length returns the number of edges on p (vertices − 1); 0 for an empty path.
func (p Path[V]) Length() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Empty reports whether p holds no vertex at all.
func (p Path[V]) Empty() bool { return len(p) == 0 }

// Strategy estimates a longest simple path inside a vertex set.
//
// The view passed to Estimate IS the vertex set (see Estimate for the
// restriction step); every returned path lies inside it. goal is optional:
// strategies that cannot aim at a goal ignore it.
//
// Implementations own all mutable search state per call and never write to
// the view, so one Strategy value may be shared by any number of goroutines.
type Strategy[V cmp.Ordered] interface {
	// Name returns the canonical strategy name ("bestfirst", "doublesweep", "relax").
	Name() string

	// Estimate runs one search from start. It returns ErrInvalidInput for an
	// empty view or a start/goal outside it, and ctx.Err() on cancellation.
	Estimate(ctx context.Context, g *core.View[V], start V, goal *V) (Path[V], error)
}

// Kind names one of the built-in strategies.
type Kind int

const (
	// BestFirst is the heuristic best-first search over partial simple paths.
	BestFirst Kind = iota
	// DoubleSweep is the two-pass depth-first estimate.
	DoubleSweep
	// Relax is the Dijkstra-style maximizing relaxation.
	Relax
)

var kindNames = [...]string{
	BestFirst:   "bestfirst",
	DoubleSweep: "doublesweep",
	Relax:       "relax",
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// SupportsGoal reports whether the strategy uses an explicit goal vertex.
func (k Kind) SupportsGoal() bool { return k == BestFirst }

// ParseKind maps a case-insensitive name to a Kind. "astar" is accepted as an
// alias of "bestfirst" and "dijkstra" as an alias of "relax".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bestfirst", "best-first", "astar":
		return BestFirst, nil
	case "doublesweep", "double-sweep", "dfs":
		return DoubleSweep, nil
	case "relax", "dijkstra":
		return Relax, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Heuristic selects the scoring function of BestFirst.
type Heuristic int

const (
	// HeuristicAuto uses Euclidean distance when the view is spatial and a
	// goal is set, the degree heuristic otherwise.
	HeuristicAuto Heuristic = iota
	// HeuristicEuclidean scores by distance to the goal position. Without
	// positions or goal it degrades to HeuristicDegree.
	HeuristicEuclidean
	// HeuristicDegree scores by negative degree of the candidate vertex.
	HeuristicDegree
)

// String returns the canonical name of h.
func (h Heuristic) String() string {
	switch h {
	case HeuristicAuto:
		return "auto"
	case HeuristicEuclidean:
		return "euclidean"
	case HeuristicDegree:
		return "degree"
	}

	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps a case-insensitive name to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return HeuristicAuto, nil
	case "euclidean", "geometric":
		return HeuristicEuclidean, nil
	case "degree":
		return HeuristicDegree, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Options configures strategy behavior.
type Options struct {
	// Heuristic selects the BestFirst scoring function.
	Heuristic Heuristic

	// MaxExpansions, if > 0, caps the number of states BestFirst pops from its
	// frontier; the best path found so far is returned when the cap is hit.
	// 0 means unbounded.
	MaxExpansions int
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns automatic heuristic selection and no expansion cap.
func DefaultOptions() Options {
	return Options{
		Heuristic:     HeuristicAuto,
		MaxExpansions: 0,
	}
}

// WithHeuristic selects the BestFirst heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxExpansions caps BestFirst frontier pops. Panics on a negative cap.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("longestpath: WithMaxExpansions(n<0)")
	}

	return func(o *Options) { o.MaxExpansions = n }
}

// New returns the built-in strategy of the given kind.
func New[V cmp.Ordered](kind Kind, opts ...Option) (Strategy[V], error) {
	switch kind {
	case BestFirst:
		return NewBestFirst[V](opts...), nil
	case DoubleSweep:
		return NewDoubleSweep[V](), nil
	case Relax:
		return NewRelax[V](), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, kind)
}
