package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger is the sink used by the pool and the render driver.
type Logger interface {
	Printf(format string, args ...interface{})
}

// writerLogger writes one line per call. Safe for concurrent use.
type writerLogger struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

func (l *writerLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	if n := len(msg); n == 0 || msg[n-1] != '\n' {
		msg += "\n"
	}
	fmt.Fprint(l.w, l.prefix+msg)
}

// New returns a Logger writing to w with an optional prefix.
func New(w io.Writer, prefix string) Logger {
	return &writerLogger{w: w, prefix: prefix}
}

// Stdout logs to standard output, matching the CLI's console output.
func Stdout() Logger {
	return New(os.Stdout, "")
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Discard drops every message.
func Discard() Logger {
	return discard{}
}
