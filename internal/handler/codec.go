package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/hufftree"
)

// CodecHandler serves compression and decompression of request bodies.
type CodecHandler struct {
	opts    *huffman.Options
	maxBody int64
}

// NewCodecHandler returns a CodecHandler that passes opts to the codec and
// rejects request bodies larger than maxBody bytes.
func NewCodecHandler(opts *huffman.Options, maxBody int64) *CodecHandler {
	return &CodecHandler{opts: opts, maxBody: maxBody}
}

// Compress responds with the compressed request body.
func (h *CodecHandler) Compress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	var out bytes.Buffer
	stats, err := huffman.Compress(&out, bytes.NewReader(body), h.opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writeStats(c, stats)
	c.Data(http.StatusOK, "application/octet-stream", out.Bytes())
}

// Decompress responds with the decompressed request body.  Streams the
// codec rejects as malformed or truncated get 400.
func (h *CodecHandler) Decompress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	var out bytes.Buffer
	stats, err := huffman.Decompress(&out, bytes.NewReader(body), h.opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, huffman.ErrMalformedHeader) ||
			errors.Is(err, huffman.ErrTruncatedPayload) ||
			errors.Is(err, huffman.ErrDegenerateTree) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	writeStats(c, stats)
	c.Data(http.StatusOK, "application/octet-stream", out.Bytes())
}

func (h *CodecHandler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func writeStats(c *gin.Context, stats huffman.Stats) {
	c.Header("X-Huff-Raw-Bytes", strconv.FormatInt(stats.RawBytes, 10))
	c.Header("X-Huff-Compressed-Bytes", strconv.FormatInt(stats.CompressedBytes(), 10))
	c.Header("X-Huff-Header-Bits", strconv.FormatInt(stats.HeaderBits, 10))
	c.Header("X-Huff-Payload-Bits", strconv.FormatInt(stats.PayloadBits, 10))
}
