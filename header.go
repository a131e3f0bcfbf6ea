package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

const (
	// MagicTree marks the start of a stream whose header is a serialized
	// code tree.
	MagicTree uint32 = 0xface8201

	// MagicReserved is reserved for future header variants.  Streams that
	// start with it are rejected.
	MagicReserved uint32 = 0xface8200

	magicBits = 32

	// maxTreeDepth is the depth of the deepest possible tree: a chain of
	// internal nodes with one leaf hanging off each level, plus two at the
	// bottom.
	maxTreeDepth = NumSymbols - 1
)

// writeHeader writes MagicTree followed by the serialized tree.
func writeHeader(sink *bitSink, root *Node) error {
	if err := sink.writeBits(magicBits, uint64(MagicTree)); err != nil {
		return err
	}
	return writeTree(sink, root)
}

// readHeader checks for MagicTree and reads the serialized tree that follows.
// Nothing past the magic number is read if it doesn't match.
func readHeader(src *bitSource) (*Node, error) {
	magic, err := src.readBits(magicBits)
	if err == errExhausted {
		return nil, errors.Wrap(ErrMalformedHeader, "stream is too short for the magic number")
	}
	if err != nil {
		return nil, err
	}
	if uint32(magic) != MagicTree {
		return nil, errors.Wrapf(ErrMalformedHeader, "illegal header starts with %#08x", magic)
	}
	return readTree(src)
}

// writeTree serializes the tree rooted at root in preorder: a 0 bit for each
// internal node, followed by its left and then its right subtree, and a 1
// bit for each leaf, followed by its symbol in SymbolBits bits.
func writeTree(sink *bitSink, root *Node) error {
	stack := []*Node{root}
	for len(stack) != 0 {
		last := len(stack) - 1
		node := stack[last]
		stack[last] = nil
		stack = stack[:last]

		if node.IsLeaf() {
			assert.Assertf(node.Symbol >= 0 && node.Symbol <= MaxSymbol, "leaf symbol %d out of range", node.Symbol)
			if err := sink.writeBit(1); err != nil {
				return err
			}
			if err := sink.writeBits(SymbolBits, uint64(node.Symbol)); err != nil {
				return err
			}
			continue
		}

		if err := sink.writeBit(0); err != nil {
			return err
		}
		stack = append(stack, node.Right, node.Left)
	}
	return nil
}

// readTree is the inverse of writeTree.  The returned tree carries zero
// weights.
//
// Besides a stream that ends inside the tree, ErrMalformedHeader is
// returned for trees that writeTree could not have produced from BuildTree:
// out-of-range or duplicate symbols, more nesting than NumSymbols leaves can
// fill, or no leaf for EOF.  A tree that consists of a single leaf is
// rejected with ErrDegenerateTree.
//
func readTree(src *bitSource) (*Node, error) {
	var root *Node
	var seen [NumSymbols]bool

	// stack holds the internal nodes that are still missing a child.  A
	// new node becomes the Left child of the top node if it has none,
	// else its Right child, which completes (and pops) the top node.

	stack := make([]*Node, 0, maxTreeDepth)

	attach := func(node *Node) {
		if root == nil {
			root = node
			return
		}
		last := len(stack) - 1
		parent := stack[last]
		if parent.Left == nil {
			parent.Left = node
			return
		}
		parent.Right = node
		stack[last] = nil
		stack = stack[:last]
	}

	for root == nil || len(stack) != 0 {
		bit, err := src.readBit()
		if err == errExhausted {
			return nil, errors.Wrap(ErrMalformedHeader, "stream ends inside the tree structure")
		}
		if err != nil {
			return nil, err
		}

		if bit == 0 {
			node := &Node{Symbol: InvalidSymbol}
			attach(node)
			if len(stack) >= maxTreeDepth {
				return nil, errors.Wrapf(ErrMalformedHeader, "tree is deeper than %d levels", maxTreeDepth)
			}
			stack = append(stack, node)
			continue
		}

		value, err := src.readBits(SymbolBits)
		if err == errExhausted {
			return nil, errors.Wrap(ErrMalformedHeader, "stream ends inside a leaf value")
		}
		if err != nil {
			return nil, err
		}
		symbol := Symbol(value)
		if symbol > MaxSymbol {
			return nil, errors.Wrapf(ErrMalformedHeader, "leaf symbol %d out of range", symbol)
		}
		if seen[symbol] {
			return nil, errors.Wrapf(ErrMalformedHeader, "duplicate leaf for symbol %d", symbol)
		}
		seen[symbol] = true
		attach(&Node{Symbol: symbol})
	}

	if root.IsLeaf() {
		return nil, errors.Wrapf(ErrDegenerateTree, "root is a leaf for symbol %d", root.Symbol)
	}
	if !seen[EOF] {
		return nil, errors.Wrap(ErrMalformedHeader, "tree has no leaf for EOF")
	}
	return root, nil
}
