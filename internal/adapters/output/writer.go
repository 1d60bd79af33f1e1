// Package output provides the single buffered sink shared by every scan in a run.
package output

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("output closed")

// Writer buffers result lines for dst. It is opened once per run, written by
// every file's scan and by the run summary, and closed exactly once.
// The first write error is sticky: later writes return it without touching dst.
type Writer struct {
	dst    io.Writer
	bw     *bufio.Writer
	err    error
	closed bool
}

// New returns a Writer buffering output for dst. If dst is also an io.Closer
// it is closed by Close.
func New(dst io.Writer) *Writer {
	return &Writer{dst: dst, bw: bufio.NewWriterSize(dst, 64*1024)}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.bw.Write(p)
	w.err = err
	return n, err
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.bw.WriteString(s)
	w.err = err
	return n, err
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(c byte) error {
	if w.closed {
		return ErrClosed
	}
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.WriteByte(c)
	return w.err
}

// WriteInt writes the decimal form of n.
func (w *Writer) WriteInt(n int) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendInt(buf[:0], int64(n), 10))
	return err
}

// Close flushes buffered output and closes dst when it is an io.Closer.
// Calling Close more than once returns ErrClosed and has no other effect.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	err := w.err
	if err == nil {
		err = w.bw.Flush()
	}
	if c, ok := w.dst.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
