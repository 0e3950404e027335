package ioformat_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/volkyrik/flowbatch/ioformat"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return path
}

func TestReadGraph_TwoNodePipe(t *testing.T) {
	dir := t.TempDir()
	edges := writeFile(t, dir, "edges.txt", "1\n0 1 1 10\n")
	nodes := writeFile(t, dir, "nodes.txt", "2\n0 10\n1 -10\n")

	g, err := ioformat.ReadGraph(edges, nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumNodes() != 2 || g.NumArcs() != 1 {
		t.Fatalf("NumNodes/NumArcs = %d/%d; want 2/1", g.NumNodes(), g.NumArcs())
	}
	if g.Node(0).Production != 10 || g.Node(1).Production != -10 {
		t.Fatalf("productions = %d/%d; want 10/-10", g.Node(0).Production, g.Node(1).Production)
	}
}

func TestReadGraph_UnlistedNodesDefaultToZero(t *testing.T) {
	dir := t.TempDir()
	edges := writeFile(t, dir, "edges.txt", "2\n0 1 1 10\n1 2 1 10\n")
	nodes := writeFile(t, dir, "nodes.txt", "2\n0 10\n2 -10\n")

	g, err := ioformat.ReadGraph(edges, nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumNodes() != 3 {
		t.Fatalf("NumNodes = %d; want 3", g.NumNodes())
	}
	if g.Node(1).Production != 0 {
		t.Fatalf("Node(1).Production = %d; want 0", g.Node(1).Production)
	}
}

func TestReadGraph_IsolatedVertexRejected(t *testing.T) {
	dir := t.TempDir()
	edges := writeFile(t, dir, "edges.txt", "1\n0 1 1 10\n")
	nodes := writeFile(t, dir, "nodes.txt", "1\n5 10\n")

	_, err := ioformat.ReadGraph(edges, nodes)
	if !errors.Is(err, ioformat.ErrIsolatedVertex) {
		t.Fatalf("expected ErrIsolatedVertex, got %v", err)
	}
}

func TestReadGraph_MalformedInteger(t *testing.T) {
	dir := t.TempDir()
	edges := writeFile(t, dir, "edges.txt", "1\n0 1 one 10\n")
	nodes := writeFile(t, dir, "nodes.txt", "0\n")

	_, err := ioformat.ReadGraph(edges, nodes)
	if !errors.Is(err, ioformat.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}
