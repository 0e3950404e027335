package core_test

import (
	"errors"
	"testing"

	"github.com/volkyrik/flowbatch/core"
)

func TestNewGraph_TwoNodePipe(t *testing.T) {
	nodes := []core.Node{{Vertex: 0, Production: 10}, {Vertex: 1, Production: -10}}
	arcs := []core.Arc{{From: 0, To: 1, Cost: 1, Limit: 10}}

	g, err := core.NewGraph(nodes, arcs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumNodes() != 2 || g.NumArcs() != 1 {
		t.Fatalf("NumNodes/NumArcs = %d/%d; want 2/1", g.NumNodes(), g.NumArcs())
	}
	if len(g.Incident(0)) != 1 || len(g.Incident(1)) != 1 {
		t.Fatalf("expected both endpoints to see the single arc")
	}
}

func TestNewGraph_EmptyGraph(t *testing.T) {
	_, err := core.NewGraph(nil, nil)
	if !errors.Is(err, core.ErrEmptyGraph) {
		t.Fatalf("expected ErrEmptyGraph, got %v", err)
	}
}

func TestNewGraph_UnbalancedProduction(t *testing.T) {
	nodes := []core.Node{{Vertex: 0, Production: 10}, {Vertex: 1, Production: -5}}
	arcs := []core.Arc{{From: 0, To: 1, Cost: 1, Limit: 10}}

	_, err := core.NewGraph(nodes, arcs)
	if !errors.Is(err, core.ErrUnbalancedProduction) {
		t.Fatalf("expected ErrUnbalancedProduction, got %v", err)
	}
}

func TestNewGraph_Disconnected(t *testing.T) {
	nodes := []core.Node{
		{Vertex: 0, Production: 10}, {Vertex: 1, Production: -10},
		{Vertex: 2, Production: 5}, {Vertex: 3, Production: -5},
	}
	arcs := []core.Arc{
		{From: 0, To: 1, Cost: 1, Limit: 10},
		{From: 2, To: 3, Cost: 1, Limit: 5},
	}

	_, err := core.NewGraph(nodes, arcs)
	if !errors.Is(err, core.ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}
}

func TestNewGraph_BadCapacityWindow(t *testing.T) {
	nodes := []core.Node{{Vertex: 0, Production: 0}, {Vertex: 1, Production: 0}}
	arcs := []core.Arc{{From: 0, To: 1, Cost: 1, LowLimit: 5, Limit: 3}}

	_, err := core.NewGraph(nodes, arcs)
	if !errors.Is(err, core.ErrBadCapacityWindow) {
		t.Fatalf("expected ErrBadCapacityWindow, got %v", err)
	}
}

func TestNewGraph_SparseNodeIDs(t *testing.T) {
	nodes := []core.Node{{Vertex: 0}, {Vertex: 2}}
	_, err := core.NewGraph(nodes, nil)
	if !errors.Is(err, core.ErrSparseNodeIDs) {
		t.Fatalf("expected ErrSparseNodeIDs, got %v", err)
	}
}

func TestWithTightenedLow_DoesNotMutateOriginal(t *testing.T) {
	nodes := []core.Node{{Vertex: 0, Production: 10}, {Vertex: 1, Production: -10}}
	arcs := []core.Arc{{From: 0, To: 1, Cost: 1, Limit: 10}}

	g, err := core.NewGraph(nodes, arcs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tightened := g.WithTightenedLow(0, 5)
	if g.Arc(0).LowLimit != 0 {
		t.Fatalf("original graph mutated: LowLimit = %d", g.Arc(0).LowLimit)
	}
	if tightened.Arc(0).LowLimit != 5 {
		t.Fatalf("tightened graph LowLimit = %d; want 5", tightened.Arc(0).LowLimit)
	}
}
