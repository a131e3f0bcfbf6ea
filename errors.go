package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedHeader is returned when a compressed stream does not
	// start with MagicTree, or when its serialized tree is cut short or
	// does not describe a valid code tree.
	ErrMalformedHeader = errors.New("malformed Huffman header")

	// ErrTruncatedPayload is returned when a compressed stream ends before
	// the code for EOF was found.
	ErrTruncatedPayload = errors.New("truncated stream: no end marker found")

	// ErrDegenerateTree is returned for a code tree whose root is a leaf.
	// Such a tree assigns the empty code to its only symbol.
	ErrDegenerateTree = errors.New("degenerate Huffman tree")
)
