// Package input produces the lines the scanner reads and the targets the run
// iterates over.
package input

import (
	"bufio"
	"errors"
	"io"
)

// LineSource reads a stream one line at a time. Lines have their trailing
// newline removed; a final line without a newline is still returned. The
// sequence is forward-only and cannot be restarted.
type LineSource struct {
	r      *bufio.Reader
	buf    []byte
	lineNo int
}

// NewLineSource wraps r in a buffered line reader.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next line. It returns io.EOF once the stream is exhausted;
// any other error is a read failure. The returned slice is only valid until
// the following call.
func (s *LineSource) Next() ([]byte, error) {
	s.buf = s.buf[:0]
	for {
		chunk, err := s.r.ReadSlice('\n')
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			// Line longer than the reader's buffer: keep accumulating.
			s.buf = append(s.buf, chunk...)
			continue
		case err == nil:
			s.lineNo++
			return s.finish(chunk[:len(chunk)-1]), nil
		case errors.Is(err, io.EOF):
			if len(chunk) == 0 && len(s.buf) == 0 {
				return nil, io.EOF
			}
			s.lineNo++
			return s.finish(chunk), nil
		default:
			return nil, err
		}
	}
}

func (s *LineSource) finish(chunk []byte) []byte {
	if len(s.buf) == 0 {
		return chunk
	}
	s.buf = append(s.buf, chunk...)
	return s.buf
}

// LineNo returns the 1-based number of the line most recently returned by
// Next, or 0 before the first line.
func (s *LineSource) LineNo() int { return s.lineNo }
