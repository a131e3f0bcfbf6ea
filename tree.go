package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman code tree.  A leaf has nil Left and Right; an
// internal node has both.  Each node is owned by its parent.
type Node struct {
	// Symbol is the leaf's symbol.  It is InvalidSymbol for internal
	// nodes.
	Symbol Symbol

	// Weight is the leaf's count, or the sum of the children's weights.
	// Trees read from a header carry zero weights.
	Weight uint64

	Left  *Node
	Right *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Dump writes a programmer-readable, indented rendering of the tree rooted
// at n to the given writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	type stackItem struct {
		node  *Node
		depth int
	}

	var buf bytes.Buffer
	stack := []stackItem{{n, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat("\t", top.depth)
		if top.node.IsLeaf() {
			fmt.Fprintf(&buf, "%sLeaf{%d, %d}\n", indent, top.node.Symbol, top.node.Weight)
			continue
		}
		fmt.Fprintf(&buf, "%sNode{%d}\n", indent, top.node.Weight)
		stack = append(stack, stackItem{top.node.Right, top.depth + 1})
		stack = append(stack, stackItem{top.node.Left, top.depth + 1})
	}
	return buf.WriteTo(w)
}

// BuildTree builds a Huffman code tree for the given histogram by repeatedly
// merging the two lightest nodes.  The lighter of the two becomes the left
// child.
//
// Ties are broken by lessNode, which makes the tree (and therefore the
// compressed output) reproducible.
//
// EOF always gets a leaf, even if h[EOF] is 0.  If EOF would be the only
// leaf, a zero-weight leaf for byte 0 is added beside it, so the returned
// root is never a leaf.
//
func BuildTree(h *Histogram) *Node {
	// Step 1: one leaf per present symbol, with seq equal to the symbol.

	items := make([]nodeAndSeq, 0, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		weight := h[symbol]
		if weight == 0 && symbol != EOF {
			continue
		}
		items = append(items, nodeAndSeq{
			node: &Node{Symbol: symbol, Weight: weight},
			seq:  uint32(symbol),
		})
	}

	// EOF is always present, so a lone leaf means every byte count is 0
	// and byte 0 is free to serve as the filler.
	if len(items) < 2 {
		items = append([]nodeAndSeq{{
			node: &Node{Symbol: 0, Weight: 0},
			seq:  0,
		}}, items...)
	}

	// Step 2: build a minheap and merge until one node remains.
	//
	// Merged nodes get sequence numbers starting at NumSymbols, so that
	// they sort after every leaf of equal weight and among themselves in
	// creation order.

	h2 := nodeHeap{items}
	h2.Init()

	nextSeq := uint32(NumSymbols)
	for h2.Len() > 1 {
		a := heap.Pop(&h2).(nodeAndSeq)
		b := heap.Pop(&h2).(nodeAndSeq)

		// Compute weightSum using saturating addition
		weightSum := a.node.Weight + b.node.Weight
		if weightSum < a.node.Weight {
			weightSum = math.MaxUint64
		}

		heap.Push(&h2, nodeAndSeq{
			node: &Node{
				Symbol: InvalidSymbol,
				Weight: weightSum,
				Left:   a.node,
				Right:  b.node,
			},
			seq: nextSeq,
		})
		nextSeq++
	}

	root := heap.Pop(&h2).(nodeAndSeq).node
	assert.Assertf(!root.IsLeaf(), "BuildTree produced a leaf root for symbol %d", root.Symbol)
	return root
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

// lessNode orders nodes by weight ascending, then by seq ascending.
func lessNode(a, b nodeAndSeq) bool {
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return lessNode(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
