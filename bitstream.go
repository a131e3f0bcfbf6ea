package huffman

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// errExhausted is returned by bitSource when fewer bits remain than were
// requested.  Callers translate it into ErrMalformedHeader or
// ErrTruncatedPayload depending on where it happened.
var errExhausted = errors.New("bit stream exhausted")

// bitSource reads bits most significant bit first, counting them.
type bitSource struct {
	r     *bitio.Reader
	count int64
}

func newBitSource(r io.Reader) *bitSource {
	return &bitSource{r: bitio.NewReader(r)}
}

// readBits reads the next n bits (n <= 64) as an unsigned integer.
func (src *bitSource) readBits(n uint) (uint64, error) {
	u, err := src.r.ReadBits(uint8(n))
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, errExhausted
	}
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	src.count += int64(n)
	return u, nil
}

// readBit reads a single bit.
func (src *bitSource) readBit() (byte, error) {
	u, err := src.readBits(1)
	return byte(u), err
}

// bitSink writes bits most significant bit first, counting them.  Close pads
// the final byte with zero bits and flushes everything to the underlying
// writer, which is not itself closed.
type bitSink struct {
	bw    *bufio.Writer
	w     *bitio.Writer
	count int64
}

func newBitSink(w io.Writer) *bitSink {
	bw := bufio.NewWriter(w)
	return &bitSink{bw: bw, w: bitio.NewWriter(bw)}
}

// writeBits writes the low-order n bits (n <= 64) of value.
func (sink *bitSink) writeBits(n uint, value uint64) error {
	if n == 0 {
		return nil
	}
	if err := sink.w.WriteBits(value, uint8(n)); err != nil {
		return errors.Wrap(err, "write")
	}
	sink.count += int64(n)
	return nil
}

// writeBit writes a single bit.
func (sink *bitSink) writeBit(bit byte) error {
	return sink.writeBits(1, uint64(bit&1))
}

func (sink *bitSink) Close() error {
	if err := sink.w.Close(); err != nil {
		return errors.Wrap(err, "write")
	}
	if err := sink.bw.Flush(); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}
