package reporting

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// flushingWriter flushes buffered sinks after every status line so progress is visible before long loads.
type flushingWriter struct {
	writer io.Writer
	mutex  sync.Mutex
}

func newFlushingWriter(writer io.Writer) io.Writer {
	if _, alreadyWrapped := writer.(*flushingWriter); alreadyWrapped {
		return writer
	}
	if _, flushable := writer.(flusher); !flushable {
		return writer
	}
	return &flushingWriter{writer: writer}
}

func (writer *flushingWriter) Write(data []byte) (int, error) {
	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	bytesWritten, writeError := writer.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}
	if flushError := writer.writer.(flusher).Flush(); flushError != nil {
		return bytesWritten, flushError
	}
	return bytesWritten, nil
}
