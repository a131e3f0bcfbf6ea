package huffman

import (
	"strings"
)

// Debug levels for Options.DebugLevel.
const (
	// DebugNone disables all logging except failures.
	DebugNone = 0

	// DebugLow logs a one-line summary per call.
	DebugLow = 1

	// DebugHigh additionally logs the code table and the code tree.
	DebugHigh = 4
)

// Logger receives the codec's log lines.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Options configures a single Compress or Decompress call.  A nil *Options
// is the same as the zero value: no logging at all.
type Options struct {
	// Logger receives log lines.  If nil, nothing is logged.
	Logger Logger

	// DebugLevel selects how much is logged.  Failures are logged at
	// every level, as long as Logger is set.
	DebugLevel int
}

func (o *Options) logger() Logger {
	if o == nil || o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

func (o *Options) level() int {
	if o == nil {
		return DebugNone
	}
	return o.DebugLevel
}

func (o *Options) infof(level int, format string, v ...interface{}) {
	if o.level() >= level {
		o.logger().Infof(format, v...)
	}
}

// dumpf logs the output of a Dump method, one log line per dumped line.
func (o *Options) dumpf(level int, dump func(*strings.Builder)) {
	if o.level() < level {
		return
	}
	var buf strings.Builder
	dump(&buf)
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		o.logger().Infof("%s", line)
	}
}

func (o *Options) fail(op string, err error) error {
	o.logger().Errorf("%s: %v", op, err)
	return err
}

type nopLogger struct{}

func (nopLogger) Infof(format string, v ...interface{})  {}
func (nopLogger) Errorf(format string, v ...interface{}) {}
