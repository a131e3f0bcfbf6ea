// Package logger adapts the standard log package to huffman.Logger.
package logger

import (
	"log"

	huffman "github.com/chronos-tachyon/hufftree"
)

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger that writes through l, or through the standard
// logger if l is nil.
func New(l *log.Logger) huffman.Logger {
	if l == nil {
		l = log.Default()
	}
	return &stdLogger{l: l}
}

func (s *stdLogger) Infof(format string, v ...interface{})  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...interface{}) { s.l.Printf("[ERROR] "+format, v...) }
