package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/hufftree/internal/handler"
)

func newTestEngine(maxBody int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, Dependencies{
		CodecHandler: handler.NewCodecHandler(nil, maxBody),
	})
	return r
}

func post(r *gin.Engine, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestEngine(1024)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestCompressDecompress(t *testing.T) {
	r := newTestEngine(1 << 20)
	input := []byte("AAAAB")

	w := post(r, "/api/v1/compress", input)
	if w.Code != http.StatusOK {
		t.Fatalf("compress: expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if expect, actual := "5", w.Header().Get("X-Huff-Raw-Bytes"); expect != actual {
		t.Errorf("wrong X-Huff-Raw-Bytes:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "9", w.Header().Get("X-Huff-Compressed-Bytes"); expect != actual {
		t.Errorf("wrong X-Huff-Compressed-Bytes:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	compressed := w.Body.Bytes()

	w = post(r, "/api/v1/decompress", compressed)
	if w.Code != http.StatusOK {
		t.Fatalf("decompress: expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if !bytes.Equal(input, w.Body.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", input, w.Body.Bytes())
	}
}

func TestDecompress_BadInput(t *testing.T) {
	r := newTestEngine(1024)

	w := post(r, "/api/v1/decompress", []byte("not a huffman stream"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("expected an error message, got %q", w.Body.String())
	}
}

func TestCompress_TooLarge(t *testing.T) {
	r := newTestEngine(16)
	w := post(r, "/api/v1/compress", bytes.Repeat([]byte{'x'}, 17))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status %d, got %d", http.StatusRequestEntityTooLarge, w.Code)
	}
}
