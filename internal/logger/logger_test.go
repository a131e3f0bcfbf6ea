package logger

import (
	"bytes"
	"log"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(log.New(&buf, "", 0))
	l.Infof("compressed %d bytes", 5)
	l.Errorf("failed: %s", "boom")

	expect := "[INFO] compressed 5 bytes\n[ERROR] failed: boom\n"
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
