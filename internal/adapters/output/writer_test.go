package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	bytes.Buffer
	closes   int
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closes++
	return c.closeErr
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("no space left on device")
}

func TestWriter_BuffersUntilClose(t *testing.T) {
	dst := &closeRecorder{}
	w := New(dst)

	_, err := w.WriteString("file.txt:")
	require.NoError(t, err)
	require.NoError(t, w.WriteInt(42))
	require.NoError(t, w.WriteByte('\n'))
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)

	assert.Empty(t, dst.String(), "nothing reaches dst before flush")
	require.NoError(t, w.Close())
	assert.Equal(t, "file.txt:42\nline\n", dst.String())
	assert.Equal(t, 1, dst.closes)
}

func TestWriter_CloseOnlyOnce(t *testing.T) {
	dst := &closeRecorder{}
	w := New(dst)
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), ErrClosed)
	assert.Equal(t, 1, dst.closes)

	_, err := w.WriteString("late")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWriter_CloseFailureIsReported(t *testing.T) {
	dst := &closeRecorder{closeErr: errors.New("bad file descriptor")}
	w := New(dst)
	_, _ = w.WriteString("x\n")
	err := w.Close()
	assert.EqualError(t, err, "bad file descriptor")
	assert.Equal(t, "x\n", dst.String(), "buffer is flushed before closing")
}

func TestWriter_FlushFailureIsReported(t *testing.T) {
	dst := &failingWriter{}
	w := New(dst)
	_, err := w.WriteString("lost\n")
	require.NoError(t, err, "buffered write succeeds")
	assert.Error(t, w.Close())
}

func TestWriter_NonCloserDestination(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	_, _ = w.WriteString("ok\n")
	require.NoError(t, w.Close())
	assert.Equal(t, "ok\n", buf.String())
}
