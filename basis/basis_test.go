package basis_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// diamondGraph builds 0 -> {1,2} -> 3 with arcs indexed in declaration order.
func diamondGraph(t *testing.T) *core.Graph {
	t.Helper()
	nodes := []core.Node{
		{Vertex: 0, Production: 10},
		{Vertex: 1, Production: 0},
		{Vertex: 2, Production: 0},
		{Vertex: 3, Production: -10},
	}
	arcs := []core.Arc{
		{From: 0, To: 1, Cost: 1, Limit: 10},
		{From: 0, To: 2, Cost: 2, Limit: 10},
		{From: 1, To: 3, Cost: 1, Limit: 10},
		{From: 2, To: 3, Cost: 1, Limit: 10},
	}
	g, err := core.NewGraph(nodes, arcs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return g
}

func TestComputePotentials_SpanningTree(t *testing.T) {
	g := diamondGraph(t)
	// basis: 0->1, 1->3, 2->3 (spanning tree, arc 0->2 excluded)
	b := basis.New(0, 2, 3)

	pi, err := basis.ComputePotentials(g, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// tree: 0-(idx0,c1)-1-(idx2,c1)-3-(idx3,c1)-2
	want := basis.Potentials{0, 1, 1, 2}
	if !reflect.DeepEqual(pi, want) {
		t.Fatalf("ComputePotentials = %v; want %v", pi, want)
	}
}

func TestComputePotentials_NotSpanning(t *testing.T) {
	g := diamondGraph(t)
	b := basis.New(0) // only one arc: node 2 and 3 unreachable
	_, err := basis.ComputePotentials(g, b)
	if !errors.Is(err, basis.ErrNotSpanning) {
		t.Fatalf("expected ErrNotSpanning, got %v", err)
	}
}

func TestFindCycle_TracesTreePath(t *testing.T) {
	g := diamondGraph(t)
	// spanning tree: 0->1 (idx0), 1->3 (idx2), 0->2 (idx1); arc 2->3 (idx3) is entering.
	b := basis.New(0, 1, 2)

	path, err := basis.FindCycle(g, b, 3, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recursive unwind order: the arc nearest stop (0) is appended first,
	// then the arc nearest start (3).
	want := []basis.CycleStep{
		{Arc: 0, Forward: false},
		{Arc: 2, Forward: false},
	}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("FindCycle = %v; want %v", path, want)
	}
}

func TestDFSLevels_Diamond(t *testing.T) {
	g := diamondGraph(t)
	b := basis.New(0, 1, 2) // tree: 0-1, 0-2, 1-3
	levels := basis.DFSLevels(g, b, 0)

	cases := []struct {
		node core.NodeID
		want int
	}{
		{3, 0}, // leaf
		{1, 1}, // parent of leaf 3
		{2, 0}, // leaf (no children in this tree)
		{0, 2}, // root, height = 1 + max(levels[1], levels[2])
	}
	for _, c := range cases {
		if levels[c.node] != c.want {
			t.Fatalf("levels[%d] = %d; want %d", c.node, levels[c.node], c.want)
		}
	}
}
