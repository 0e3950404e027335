package dual_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
	"github.com/volkyrik/flowbatch/dual"
)

type DualSuite struct {
	suite.Suite
}

func TestDualSuite(t *testing.T) {
	suite.Run(t, new(DualSuite))
}

// TestAlreadyFeasible: running the dual simplex on an already-feasible
// basis must return the same flow without pivoting (§8 round-trip).
func (s *DualSuite) TestAlreadyFeasible() {
	nodes := []core.Node{
		{Vertex: 0, Production: 10},
		{Vertex: 1, Production: -10},
	}
	arcs := []core.Arc{
		{From: 0, To: 1, Cost: 1, Limit: 10},
	}
	g, err := core.NewGraph(nodes, arcs)
	require.NoError(s.T(), err)

	b := basis.New(0)
	res, err := dual.Solve(g, b, dual.Options{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.Pivots)
	require.Equal(s.T(), []int64{10}, res.Flow)
}

// TestTightenedLowLimitInfeasible: after primal finds flow=10 on the sole arc,
// tightening LowLimit to 11 makes the basis pseudo-infeasible but
// still dual-feasible; the dual solve must restore feasibility on the
// tightened graph, or report infeasibility if it can't (a single-arc
// graph has no alternate path, so this must be infeasible).
func (s *DualSuite) TestTightenedLowLimitInfeasible() {
	nodes := []core.Node{
		{Vertex: 0, Production: 10},
		{Vertex: 1, Production: -10},
	}
	arcs := []core.Arc{
		{From: 0, To: 1, Cost: 1, LowLimit: 11, Limit: 20},
	}
	g, err := core.NewGraph(nodes, arcs)
	require.NoError(s.T(), err)

	b := basis.New(0)
	opts := dual.Options{Rand: rand.New(rand.NewSource(7))}
	_, err = dual.Solve(g, b, opts)
	require.Error(s.T(), err)
}

// TestTightenedLimitRestoresFeasibility: a diamond graph where
// tightening one path's Limit below its current flow forces the dual
// to reroute the excess onto the other path.
func (s *DualSuite) TestTightenedLimitRestoresFeasibility() {
	nodes := []core.Node{
		{Vertex: 0, Production: 10},
		{Vertex: 1, Production: 0},
		{Vertex: 2, Production: 0},
		{Vertex: 3, Production: -10},
	}
	arcs := []core.Arc{
		{From: 0, To: 1, Cost: 1, Limit: 4}, // tightened below its earlier flow of 10
		{From: 0, To: 2, Cost: 2, Limit: 10},
		{From: 1, To: 3, Cost: 1, Limit: 10},
		{From: 2, To: 3, Cost: 1, Limit: 10},
	}
	g, err := core.NewGraph(nodes, arcs)
	require.NoError(s.T(), err)

	// basis from the optimal primal solve before tightening: arcs 0,2,3
	b := basis.New(0, 2, 3)
	opts := dual.Options{Rand: rand.New(rand.NewSource(7))}
	res, err := dual.Solve(g, b, opts)
	require.NoError(s.T(), err)

	for i, f := range res.Flow {
		a := g.Arc(core.ArcIndex(i))
		require.GreaterOrEqual(s.T(), f, a.LowLimit)
		require.LessOrEqual(s.T(), f, a.Limit)
	}

	var inflow, outflow int64
	for i, f := range res.Flow {
		a := g.Arc(core.ArcIndex(i))
		if a.To == 3 {
			inflow += f
		}
		if a.From == 0 {
			outflow += f
		}
		_ = a
	}
	require.Equal(s.T(), int64(10), inflow)
	require.Equal(s.T(), int64(10), outflow)
}
