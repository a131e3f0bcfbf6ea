package huffman

import (
	"bufio"
	"io"
)

// byteReader returns r itself if it can already read single bytes, else r
// wrapped in a bufio.Reader.  The wrapper may read ahead of what is
// consumed through it.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
