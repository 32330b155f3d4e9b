package parallel_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvlmax/core"
	"github.com/katalvlaran/lvlmax/longestpath"
	"github.com/katalvlaran/lvlmax/parallel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrchestratorSuite struct {
	suite.Suite
	cycle *core.View[int]
	star  *core.View[int]
	quiet logrus.FieldLogger
}

func (s *OrchestratorSuite) SetupTest() {
	s.cycle = viewOf(s.T(), [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	s.star = viewOf(s.T(), [][2]int{{0, 1}, {0, 2}, {0, 3}})
	l, _ := logtest.NewNullLogger()
	s.quiet = l
}

func viewOf(t testing.TB, edges [][2]int) *core.View[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g.View()
}

func (s *OrchestratorSuite) TestCyclePairsBestFirst() {
	res, err := parallel.BestLongestPath(context.Background(), s.cycle,
		longestpath.NewBestFirst[int](), parallel.Pairs(s.cycle.Len()),
		parallel.WithLogger(s.quiet))
	s.Require().NoError(err)
	s.Equal(4, res.Length)
	s.Equal(10, res.Total)
	s.Equal(10, res.Completed)
	s.False(res.Partial)
	s.NoError(longestpath.Validate(s.cycle, res.Path))
}

func (s *OrchestratorSuite) TestStarEveryStrategy() {
	for _, st := range []longestpath.Strategy[int]{
		longestpath.NewBestFirst[int](),
		longestpath.NewDoubleSweep[int](),
		longestpath.NewRelax[int](),
	} {
		res, err := parallel.BestLongestPath(context.Background(), s.star, st,
			parallel.Vertices(s.star.Len()), parallel.WithLogger(s.quiet))
		s.Require().NoError(err, st.Name())
		s.Equal(2, res.Length, st.Name())
	}
}

func (s *OrchestratorSuite) TestDeterministicAcrossWorkerCounts() {
	v := randomView(s.T(), 60, 90, 3)
	var first parallel.Result[int]
	for i, w := range []int{1, 2, 4, 8} {
		res, err := parallel.BestLongestPath(context.Background(), v,
			longestpath.NewRelax[int](), parallel.Vertices(v.Len()),
			parallel.WithWorkers(w), parallel.WithLogger(s.quiet))
		s.Require().NoError(err)
		if i == 0 {
			first = res
			continue
		}
		s.Equal(first.Path, res.Path, "workers=%d", w)
		s.Equal(first.Item, res.Item, "workers=%d", w)
	}
}

func (s *OrchestratorSuite) TestEmptyWorkSet() {
	_, err := parallel.BestLongestPath(context.Background(), s.cycle,
		longestpath.NewRelax[int](), parallel.Pairs(1))
	s.ErrorIs(err, parallel.ErrNoWork)

	_, err = parallel.BestLongestPath[int](context.Background(), s.cycle,
		longestpath.NewRelax[int](), nil)
	s.ErrorIs(err, parallel.ErrNoWork)
}

func (s *OrchestratorSuite) TestCanceledBeforeStart() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := parallel.BestLongestPath(ctx, s.cycle, longestpath.NewRelax[int](),
		parallel.Vertices(5), parallel.WithLogger(s.quiet))
	s.ErrorIs(err, context.Canceled)
	s.Zero(res.Completed)
	s.Nil(res.Path)
}

func (s *OrchestratorSuite) TestCancelMidRunReturnsPartial() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st := &scripted{onCall: func(ctx context.Context, n int64) (longestpath.Path[int], error) {
		if n == 1 {
			return longestpath.Path[int]{0, 1, 2}, nil
		}
		cancel()
		return nil, ctx.Err()
	}}

	res, err := parallel.BestLongestPath(ctx, s.cycle, st, parallel.Vertices(5),
		parallel.WithWorkers(1), parallel.WithLogger(s.quiet))
	s.Require().NoError(err)
	s.True(res.Partial)
	s.Equal(1, res.Completed)
	s.Equal(5, res.Total)
	s.Equal(2, res.Length)
	s.Equal(0, res.Item)
}

func (s *OrchestratorSuite) TestStrategyErrorStopsRun() {
	boom := errors.New("boom")
	st := &scripted{onCall: func(context.Context, int64) (longestpath.Path[int], error) {
		return nil, boom
	}}
	_, err := parallel.BestLongestPath(context.Background(), s.cycle, st,
		parallel.Vertices(5), parallel.WithLogger(s.quiet))
	s.ErrorIs(err, boom)
}

func (s *OrchestratorSuite) TestMetricsAndLogging() {
	reg := prometheus.NewRegistry()
	m := parallel.NewMetrics(reg)
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	res, err := parallel.BestLongestPath(context.Background(), s.cycle,
		longestpath.NewRelax[int](), parallel.Vertices(5),
		parallel.WithMetrics(m), parallel.WithLogger(logger), parallel.WithProgressEvery(5))
	s.Require().NoError(err)

	s.Equal(5.0, testutil.ToFloat64(m.ItemsTotal.WithLabelValues("relax", parallel.OutcomeOK)))
	s.Equal(float64(res.Length), testutil.ToFloat64(m.BestLength.WithLabelValues("relax")))
	s.Equal(1, testutil.CollectAndCount(m.ItemDurationSeconds))

	last := hook.LastEntry()
	s.Require().NotNil(last)
	s.Equal("search finished", last.Message)
	s.Equal(4, last.Data["lmax"])

	var progress int
	for _, e := range hook.AllEntries() {
		if e.Message == "search progress" {
			progress++
		}
	}
	s.Equal(1, progress)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

// Raising the restart count never lowers the double-sweep estimate.
func TestRestartsMonotone(t *testing.T) {
	v := randomView(t, 80, 100, 9)
	l, _ := logtest.NewNullLogger()
	prev := -1
	for k := 1; k <= 12; k++ {
		res, err := parallel.BestLongestPath(context.Background(), v,
			longestpath.NewDoubleSweep[int](), parallel.Restarts(v.Len(), k, 5),
			parallel.WithLogger(l))
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Length, prev, "k=%d", k)
		prev = res.Length
	}
}

func randomView(t testing.TB, n, m int, seed int64) *core.View[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < m; i++ {
		require.NoError(t, g.AddEdge(rng.Intn(n), rng.Intn(n)))
	}

	return g.View()
}

// scripted is a Strategy whose behavior is supplied per call.
type scripted struct {
	calls  atomic.Int64
	onCall func(ctx context.Context, n int64) (longestpath.Path[int], error)
}

func (*scripted) Name() string { return "scripted" }

func (s *scripted) Estimate(ctx context.Context, _ *core.View[int], _ int, _ *int) (longestpath.Path[int], error) {
	return s.onCall(ctx, s.calls.Add(1))
}
