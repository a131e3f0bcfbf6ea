package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder maps each Symbol to the Code given by its path in a code tree.
type Encoder struct {
	codes   []Code
	present []bool
	minSize int
	maxSize int
}

// Init initializes this Encoder from the code tree rooted at root, assigning
// each leaf the path from root to that leaf: 0 for every step to a left
// child, 1 for every step to a right child.
//
// A root that is itself a leaf would receive the empty code, which cannot be
// decoded; Init rejects it with ErrDegenerateTree.
//
func (e *Encoder) Init(root *Node) error {
	assert.Assertf(root != nil, "Encoder.Init called with nil root")
	if root.IsLeaf() {
		return errors.Wrapf(ErrDegenerateTree, "root is a leaf for symbol %d", root.Symbol)
	}

	codes := make([]Code, NumSymbols)
	present := make([]bool, NumSymbols)
	var minSize, maxSize int
	var hasMinMax bool

	// Walk the tree with an explicit stack, so that the maximally skewed
	// trees (one leaf per level) don't cost a goroutine stack frame per
	// level.  Each stackItem carries the path that led to it.

	type stackItem struct {
		node *Node
		code Code
	}

	stack := make([]stackItem, 0, maxTreeDepth+1)

	stackPush := func(node *Node, code Code) {
		stack = append(stack, stackItem{node, code})
	}

	stackPop := func() stackItem {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]
		return item
	}

	processLeaf := func(item stackItem) error {
		symbol := item.node.Symbol
		if symbol < 0 || symbol > MaxSymbol {
			return errors.Wrapf(ErrMalformedHeader, "leaf symbol %d out of range", symbol)
		}
		if present[symbol] {
			return errors.Wrapf(ErrMalformedHeader, "duplicate leaf for symbol %d", symbol)
		}
		present[symbol] = true
		codes[symbol] = item.code

		size := item.code.Size
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		return nil
	}

	// Right is pushed before left, so leaves are visited in preorder.
	stackPush(root, Code{})
	for len(stack) != 0 {
		item := stackPop()
		node := item.node
		if node.IsLeaf() {
			if err := processLeaf(item); err != nil {
				return err
			}
			continue
		}
		assert.Assertf(node.Left != nil && node.Right != nil, "internal node with a single child at %s", item.code)
		stackPush(node.Right, item.code.Append(1))
		stackPush(node.Left, item.code.Append(0))
	}

	if !present[EOF] {
		return errors.Wrap(ErrMalformedHeader, "tree has no leaf for EOF")
	}

	*e = Encoder{
		codes:   codes,
		present: present,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Symbols without
// a leaf in the tree get the empty Code.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// Has returns true iff symbol has a leaf in the tree.
func (e Encoder) Has(symbol Symbol) bool {
	return e.present[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := Symbol(0); symbol < Symbol(len(e.codes)); symbol++ {
		if e.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// encodeBody writes the code of every byte read from r, followed by the
// code of EOF.  It returns the number of bytes read.
func (e Encoder) encodeBody(r io.Reader, sink *bitSink) (int64, error) {
	br := byteReader(r)

	var n int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, errors.Wrap(err, "read")
		}
		if !e.present[b] {
			return n, errors.Errorf("byte %#02x at offset %d has no code; input changed between passes?", b, n)
		}
		if err := e.codes[b].writeTo(sink); err != nil {
			return n, err
		}
		n++
	}
	return n, e.codes[EOF].writeTo(sink)
}
