// Package reporting prints human-facing status lines for CLI commands.
package reporting

import (
	"fmt"
	"io"
	"os"
)

// Reporter emits formatted status messages to an underlying sink.
type Reporter interface {
	Printf(format string, args ...any)
}

type writerReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a Reporter that writes to the provided io.Writer, defaulting to standard output.
// Writers exposing Flush are flushed after each message.
func NewWriterReporter(writer io.Writer) Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return writerReporter{writer: newFlushingWriter(writer)}
}

func (reporter writerReporter) Printf(format string, args ...any) {
	fmt.Fprintf(reporter.writer, format, args...)
}

type discardReporter struct{}

// NewDiscardReporter constructs a Reporter that drops every message.
func NewDiscardReporter() Reporter {
	return discardReporter{}
}

func (discardReporter) Printf(string, ...any) {}
