package writers

import (
	"io"
)

// LazyWriteCloser defers opening the underlying writer until the first
// write. Nothing touches the disk for a run that produces no rows.
type LazyWriteCloser struct {
	open   func() (io.WriteCloser, error)
	writer io.WriteCloser
}

// NewLazyWriteCloser wraps open, which is called at most once, on the
// first Write.
func NewLazyWriteCloser(open func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{open: open}
}

func (l *LazyWriteCloser) Write(p []byte) (int, error) {
	if l.writer == nil {
		var err error
		l.writer, err = l.open()
		if err != nil {
			return 0, err
		}
	}
	return l.writer.Write(p)
}

// Close closes the underlying writer if it was ever opened.
func (l *LazyWriteCloser) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}
