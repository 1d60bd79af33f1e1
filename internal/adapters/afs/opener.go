// Package afs implements ports.Opener on top of an afero file system, so the
// run can be exercised against an in-memory file system in tests.
package afs

import (
	"errors"
	"io"

	"github.com/spf13/afero"
)

// ErrIsDir is returned when a directory is opened as an input file.
var ErrIsDir = errors.New("is a directory")

// Opener opens targets on fs and serves stdin for the "-" target.
type Opener struct {
	fs    afero.Fs
	stdin io.Reader
}

// New returns an Opener over fs. stdin is returned unchanged by Stdin.
func New(fs afero.Fs, stdin io.Reader) *Opener {
	return &Opener{fs: fs, stdin: stdin}
}

// Open opens name for reading. Directories are refused so a directory target
// fails at open time rather than on its first read.
func (o *Opener) Open(name string) (io.ReadCloser, error) {
	f, err := o.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrIsDir
	}
	return f, nil
}

// IsDir returns true if name exists and is a directory.
func (o *Opener) IsDir(name string) bool {
	ok, err := afero.IsDir(o.fs, name)
	return err == nil && ok
}

// Stdin returns the process standard input.
func (o *Opener) Stdin() io.Reader { return o.stdin }
