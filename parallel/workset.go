// File: workset.go
// Role: Lazily indexed work sets over the dense indices 0..n-1 of a view.
// Determinism:
//   - At(i) is a pure function of i and the constructor arguments.
//   - Seeded sets are reproducible; Restarts(n, k+1, s) extends Restarts(n, k, s).

package parallel

import (
	"math/rand"
	"slices"
	"sort"
)

// Item is one unit of work: a start index and an optional goal index.
// Goal is -1 when the item carries no goal.
type Item struct {
	Start int
	Goal  int
}

// HasGoal reports whether it names a goal vertex.
func (it Item) HasGoal() bool { return it.Goal >= 0 }

// WorkSet is a read-only, randomly addressable sequence of work items.
// Implementations must be safe for concurrent At calls.
type WorkSet interface {
	Len() int
	At(i int) Item
}

// pairs enumerates every unordered pair {a<b} of 0..n-1 in lexicographic order
// without materializing them.
type pairs struct {
	n     int
	total int
}

// Pairs returns all n(n−1)/2 unordered pairs of distinct vertices.
func Pairs(n int) WorkSet {
	if n < 2 {
		return pairs{n: n}
	}

	return pairs{n: n, total: n * (n - 1) / 2}
}

func (p pairs) Len() int { return p.total }

// offset is the index of the first pair whose smaller endpoint is a.
func (p pairs) offset(a int) int { return a * (2*p.n - a - 1) / 2 }

func (p pairs) At(i int) Item {
	a := sort.Search(p.n-1, func(a int) bool { return p.offset(a+1) > i })

	return Item{Start: a, Goal: a + 1 + i - p.offset(a)}
}

// sampled is a sorted subset of a pairs set.
type sampled struct {
	all pairs
	idx []int
}

// SampledPairs returns k distinct unordered pairs chosen uniformly with the
// given seed, in lexicographic order. When k ≥ n(n−1)/2 it returns Pairs(n).
func SampledPairs(n, k int, seed int64) WorkSet {
	all := Pairs(n).(pairs)
	if k >= all.total {
		return all
	}
	if k <= 0 {
		return sampled{all: all}
	}

	// Floyd's sampling: exactly k draws, no rejection loop.
	rng := rand.New(rand.NewSource(seed))
	chosen := make(map[int]struct{}, k)
	idx := make([]int, 0, k)
	for j := all.total - k; j < all.total; j++ {
		t := rng.Intn(j + 1)
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		idx = append(idx, t)
	}
	slices.Sort(idx)

	return sampled{all: all, idx: idx}
}

func (s sampled) Len() int { return len(s.idx) }

func (s sampled) At(i int) Item { return s.all.At(s.idx[i]) }

// starts is an explicit list of start indices without goals.
type starts []int

// Restarts returns k start indices drawn uniformly from 0..n-1 with the given
// seed (repeats possible). Restarts(n, k+1, seed) has Restarts(n, k, seed) as
// its prefix. k ≤ 0 selects every vertex once, in index order.
func Restarts(n, k int, seed int64) WorkSet {
	if n <= 0 {
		return starts(nil)
	}
	if k <= 0 {
		return Vertices(n)
	}
	rng := rand.New(rand.NewSource(seed))
	s := make(starts, k)
	for i := range s {
		s[i] = rng.Intn(n)
	}

	return s
}

// Vertices returns every index 0..n-1 once as a start without goal.
func Vertices(n int) WorkSet {
	s := make(starts, max(n, 0))
	for i := range s {
		s[i] = i
	}

	return s
}

func (s starts) Len() int { return len(s) }

func (s starts) At(i int) Item { return Item{Start: s[i], Goal: -1} }
