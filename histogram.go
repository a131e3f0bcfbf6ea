package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// Histogram holds the number of occurrences of each Symbol.
type Histogram [NumSymbols]uint64

// Add counts every byte of p.  EOF is forced to a count of at least 1.
func (h *Histogram) Add(p []byte) {
	for _, b := range p {
		h[b]++
	}
	h.ensureEOF()
}

// ReadFrom counts every byte read from r until io.EOF, then forces EOF to a
// count of at least 1.  It returns the number of bytes read.  Only errors
// from r are reported.
func (h *Histogram) ReadFrom(r io.Reader) (int64, error) {
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
		h[b]++
		n++
	}
	h.ensureEOF()
	return n, nil
}

// Len returns the number of symbols with a nonzero count.
func (h *Histogram) Len() int {
	var n int
	for _, count := range h {
		if count != 0 {
			n++
		}
	}
	return n
}

func (h *Histogram) ensureEOF() {
	if h[EOF] == 0 {
		h[EOF] = 1
	}
}

var _ io.ReaderFrom = (*Histogram)(nil)
