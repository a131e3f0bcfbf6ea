package huffman

import (
	"strings"
	"testing"
)

func dumpTree(root *Node) string {
	var buf strings.Builder
	_, _ = root.Dump(&buf)
	return buf.String()
}

func TestBuildTree_AAAAB(t *testing.T) {
	var h Histogram
	h.Add([]byte("AAAAB"))
	root := BuildTree(&h)

	expectDump := strings.Join([]string{
		"Node{6}\n",
		"\tNode{2}\n",
		"\t\tLeaf{66, 1}\n",
		"\t\tLeaf{256, 1}\n",
		"\tLeaf{65, 4}\n",
	}, "")
	actualDump := dumpTree(root)
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	var h Histogram
	h.Add(nil)
	root := BuildTree(&h)

	expectDump := strings.Join([]string{
		"Node{1}\n",
		"\tLeaf{0, 0}\n",
		"\tLeaf{256, 1}\n",
	}, "")
	actualDump := dumpTree(root)
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_ForcesEOF(t *testing.T) {
	var h Histogram
	h['x'] = 3

	var e Encoder
	if err := e.Init(BuildTree(&h)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !e.Has(EOF) {
		t.Errorf("expected a code for EOF")
	}
	if !e.Has('x') {
		t.Errorf("expected a code for 'x'")
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	// Every weight is equal, so the shape is decided by tie-breaking alone.
	var h Histogram
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		h[symbol] = 7
	}

	expect := dumpTree(BuildTree(&h))
	for i := 0; i < 10; i++ {
		if actual := dumpTree(BuildTree(&h)); expect != actual {
			t.Fatalf("BuildTree is not deterministic on iteration %d", i)
		}
	}
}

func TestLessNode(t *testing.T) {
	leafA := nodeAndSeq{node: &Node{Symbol: 'A', Weight: 2}, seq: 'A'}
	leafB := nodeAndSeq{node: &Node{Symbol: 'B', Weight: 2}, seq: 'B'}
	light := nodeAndSeq{node: &Node{Symbol: 'Z', Weight: 1}, seq: 'Z'}
	inner1 := nodeAndSeq{node: &Node{Symbol: InvalidSymbol, Weight: 2}, seq: NumSymbols}
	inner2 := nodeAndSeq{node: &Node{Symbol: InvalidSymbol, Weight: 2}, seq: NumSymbols + 1}

	type testRow struct {
		name   string
		a, b   nodeAndSeq
		expect bool
	}

	testData := [...]testRow{
		{"lighter first", light, leafA, true},
		{"heavier last", leafA, light, false},
		{"lower symbol first", leafA, leafB, true},
		{"higher symbol last", leafB, leafA, false},
		{"leaf before merged", leafB, inner1, true},
		{"merged after leaf", inner1, leafB, false},
		{"older merged first", inner1, inner2, true},
		{"newer merged last", inner2, inner1, false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := lessNode(row.a, row.b); actual != row.expect {
				t.Errorf("expected %t, got %t", row.expect, actual)
			}
		})
	}
}
