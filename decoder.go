package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Decoder walks a code tree one bit at a time.
//
// The walk starts at the root.  Each bit moves it to the left (0) or right
// (1) child.  Reaching the leaf for a byte yields that byte and restarts the
// walk at the root; reaching the leaf for EOF yields EOF and ends the walk.
//
type Decoder struct {
	root    *Node
	current *Node
	done    bool
}

// NewDecoder returns a Decoder positioned at root.  A root that is itself a
// leaf is rejected with ErrDegenerateTree, because no bit could ever lead to
// it.
func NewDecoder(root *Node) (*Decoder, error) {
	assert.Assertf(root != nil, "NewDecoder called with nil root")
	if root.IsLeaf() {
		return nil, errors.Wrapf(ErrDegenerateTree, "root is a leaf for symbol %d", root.Symbol)
	}
	return &Decoder{root: root, current: root}, nil
}

// Advance consumes one bit.
//
// It returns the Symbol of the leaf reached, or InvalidSymbol if the walk is
// still inside the tree.  Advance must not be called once Done is true.
//
func (d *Decoder) Advance(bit byte) Symbol {
	assert.Assertf(!d.done, "Decoder.Advance called after EOF")

	if bit == 0 {
		d.current = d.current.Left
	} else {
		d.current = d.current.Right
	}
	assert.Assertf(d.current != nil, "internal node with a single child")

	if !d.current.IsLeaf() {
		return InvalidSymbol
	}

	symbol := d.current.Symbol
	if symbol == EOF {
		d.done = true
	} else {
		d.current = d.root
	}
	return symbol
}

// Done returns true once the EOF leaf has been reached.
func (d *Decoder) Done() bool {
	return d.done
}

// Reset returns the Decoder to the root, leaving the terminal state if it was
// in it.
func (d *Decoder) Reset() {
	d.current = d.root
	d.done = false
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tDone() = %t\n", d.done)
	fmt.Fprintf(&buf, "\tAtRoot() = %t\n", d.current == d.root)
	buf.WriteString("}\n")
	_, _ = d.root.Dump(&buf)
	return buf.WriteTo(w)
}

// decodeBody runs the walk against src until EOF, writing every decoded
// byte to w.  It returns the number of bytes decoded.
func (d *Decoder) decodeBody(src *bitSource, w *bufio.Writer) (int64, error) {
	var n int64
	for !d.done {
		bit, err := src.readBit()
		if err == errExhausted {
			return n, errors.Wrapf(ErrTruncatedPayload, "after %d decoded bytes", n)
		}
		if err != nil {
			return n, err
		}

		symbol := d.Advance(bit)
		if !symbol.IsByte() {
			continue
		}
		if err := w.WriteByte(byte(symbol)); err != nil {
			return n, errors.Wrap(err, "write")
		}
		n++
	}
	return n, nil
}
