package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/volkyrik/flowbatch/core"
)

// ReadGraph loads an edges file and a nodes file and validates the
// result through core.NewGraph.
//
// edges_file: first line m, then m lines "from to cost limit".
// nodes_file: first line k, then k lines "vertex production"; vertices
// not listed default to production 0. The node count is inferred as
// one more than the largest vertex id seen in the edges file.
func ReadGraph(edgesPath, nodesPath string) (*core.Graph, error) {
	arcs, numNodes, err := readEdges(edgesPath)
	if err != nil {
		return nil, err
	}

	nodes, err := readNodes(nodesPath, numNodes)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(nodes, arcs)
}

func readEdges(path string) ([]core.Arc, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("ioformat: open edges file %q: %w", path, err)
	}
	defer f.Close()

	sc := newTokenScanner(f)

	m, err := nextInt(sc)
	if err != nil {
		return nil, 0, fmt.Errorf("ioformat: edges file %q: record count: %w", path, err)
	}

	arcs := make([]core.Arc, 0, m)
	maxVertex := int64(-1)
	for i := 0; i < m; i++ {
		from, err := nextInt64(sc)
		if err != nil {
			return nil, 0, fmt.Errorf("ioformat: edges file %q: record %d: from: %w", path, i, err)
		}
		to, err := nextInt64(sc)
		if err != nil {
			return nil, 0, fmt.Errorf("ioformat: edges file %q: record %d: to: %w", path, i, err)
		}
		cost, err := nextInt64(sc)
		if err != nil {
			return nil, 0, fmt.Errorf("ioformat: edges file %q: record %d: cost: %w", path, i, err)
		}
		limit, err := nextInt64(sc)
		if err != nil {
			return nil, 0, fmt.Errorf("ioformat: edges file %q: record %d: limit: %w", path, i, err)
		}

		if from > maxVertex {
			maxVertex = from
		}
		if to > maxVertex {
			maxVertex = to
		}

		arcs = append(arcs, core.Arc{From: core.NodeID(from), To: core.NodeID(to), Cost: cost, Limit: limit})
	}

	return arcs, int(maxVertex + 1), nil
}

func readNodes(path string, numNodes int) ([]core.Node, error) {
	nodes := make([]core.Node, numNodes)
	for i := range nodes {
		nodes[i] = core.Node{Vertex: core.NodeID(i)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformat: open nodes file %q: %w", path, err)
	}
	defer f.Close()

	sc := newTokenScanner(f)

	k, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("ioformat: nodes file %q: record count: %w", path, err)
	}

	for i := 0; i < k; i++ {
		vertex, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("ioformat: nodes file %q: record %d: vertex: %w", path, i, err)
		}
		production, err := nextInt64(sc)
		if err != nil {
			return nil, fmt.Errorf("ioformat: nodes file %q: record %d: production: %w", path, i, err)
		}

		if vertex < 0 || vertex >= numNodes {
			return nil, fmt.Errorf("ioformat: nodes file %q: vertex %d: %w", path, vertex, ErrIsolatedVertex)
		}

		nodes[vertex] = core.Node{Vertex: core.NodeID(vertex), Production: production}
	}

	return nodes, nil
}

func newTokenScanner(f *os.File) *bufio.Scanner {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return sc
}

func nextInt(sc *bufio.Scanner) (int, error) {
	v, err := nextInt64(sc)

	return int(v), err
}

func nextInt64(sc *bufio.Scanner) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
	}

	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, sc.Text())
	}

	return v, nil
}
