package logger

import (
	"bufio"
	"os"
	"path/filepath"
	"time"
)

// AsyncFileWriter decouples log emission from disk IO. Writes are queued
// on a channel and flushed by a single background goroutine; when the
// queue is full the entry is dropped rather than blocking the caller.
type AsyncFileWriter struct {
	writer  *bufio.Writer
	file    *os.File
	entries chan []byte
	done    chan struct{}
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	aw := &AsyncFileWriter{
		writer:  bufio.NewWriterSize(file, bufferSize),
		file:    file,
		entries: make(chan []byte, 1000),
		done:    make(chan struct{}),
	}

	go aw.processEntries()

	return aw, nil
}

func (aw *AsyncFileWriter) Write(p []byte) (n int, err error) {
	select {
	case aw.entries <- append([]byte{}, p...):
		return len(p), nil
	default:
		return 0, nil
	}
}

func (aw *AsyncFileWriter) processEntries() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case entry := <-aw.entries:
			_, _ = aw.writer.Write(entry)

		case <-ticker.C:
			_ = aw.writer.Flush()

		case <-aw.done:
			for len(aw.entries) > 0 {
				_, _ = aw.writer.Write(<-aw.entries)
			}
			_ = aw.writer.Flush()
			return
		}
	}
}

func (aw *AsyncFileWriter) Close() {
	close(aw.done)
	_ = aw.file.Close()
}
