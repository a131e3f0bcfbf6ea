package huffman

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Stats describes the work done by one Compress or Decompress call.
type Stats struct {
	// RawBytes is the number of uncompressed bytes: read by Compress,
	// written by Decompress.
	RawBytes int64

	// HeaderBits is the size of the magic number plus the serialized
	// tree.
	HeaderBits int64

	// PayloadBits is the size of the encoded bytes plus the code for EOF,
	// not counting the final padding.
	PayloadBits int64
}

// CompressedBytes is the size of the compressed stream, padding included.
func (s Stats) CompressedBytes() int64 {
	return (s.HeaderBits + s.PayloadBits + 7) / 8
}

// Compress reads src from its current offset to the end, then seeks back
// and reads it a second time, writing the compressed stream to dst.
func Compress(dst io.Writer, src io.ReadSeeker, opts *Options) (Stats, error) {
	var stats Stats

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return stats, opts.fail("compress", errors.Wrap(err, "seek"))
	}

	var h Histogram
	if _, err := h.ReadFrom(src); err != nil {
		return stats, opts.fail("compress", err)
	}

	root := BuildTree(&h)

	var e Encoder
	if err := e.Init(root); err != nil {
		return stats, opts.fail("compress", err)
	}
	opts.dumpf(DebugHigh, func(buf *strings.Builder) { _, _ = e.Dump(buf) })

	sink := newBitSink(dst)
	if err := writeHeader(sink, root); err != nil {
		return stats, opts.fail("compress", err)
	}
	stats.HeaderBits = sink.count

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return stats, opts.fail("compress", errors.Wrap(err, "seek"))
	}

	n, err := e.encodeBody(src, sink)
	stats.RawBytes = n
	stats.PayloadBits = sink.count - stats.HeaderBits
	if err != nil {
		return stats, opts.fail("compress", err)
	}

	if err := sink.Close(); err != nil {
		return stats, opts.fail("compress", err)
	}

	opts.infof(DebugLow, "compress: %d bytes in, %d bytes out (header %d bits, payload %d bits)",
		stats.RawBytes, stats.CompressedBytes(), stats.HeaderBits, stats.PayloadBits)
	return stats, nil
}

// Decompress reads a compressed stream from src and writes the original
// bytes to dst.
//
// Decoding stops at the code for EOF; anything after it in src is left
// unread or ignored.  On error, dst may already hold some of the decoded
// bytes, which must not be trusted.  Decoded bytes are buffered 4096 at a
// time, so this only happens once more than 4096 bytes have been decoded,
// and what reaches dst is always a multiple of 4096 bytes.
//
func Decompress(dst io.Writer, src io.Reader, opts *Options) (Stats, error) {
	var stats Stats

	source := newBitSource(src)
	root, err := readHeader(source)
	if err != nil {
		return stats, opts.fail("decompress", err)
	}
	stats.HeaderBits = source.count

	d, err := NewDecoder(root)
	if err != nil {
		return stats, opts.fail("decompress", err)
	}
	opts.dumpf(DebugHigh, func(buf *strings.Builder) { _, _ = d.Dump(buf) })

	bw := bufio.NewWriter(dst)
	n, err := d.decodeBody(source, bw)
	stats.RawBytes = n
	stats.PayloadBits = source.count - stats.HeaderBits
	if err != nil {
		return stats, opts.fail("decompress", err)
	}

	if err := bw.Flush(); err != nil {
		return stats, opts.fail("decompress", errors.Wrap(err, "write"))
	}

	opts.infof(DebugLow, "decompress: %d bytes in, %d bytes out (header %d bits, payload %d bits)",
		stats.CompressedBytes(), stats.RawBytes, stats.HeaderBits, stats.PayloadBits)
	return stats, nil
}

// CompressBytes is a convenience wrapper around Compress for in-memory data.
func CompressBytes(p []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(p), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes is a convenience wrapper around Decompress for in-memory
// data.  Nothing is returned on error.
func DecompressBytes(p []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(p), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
