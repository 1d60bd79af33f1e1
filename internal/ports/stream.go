package ports

import "io"

// Opener gives the scanner access to input streams.
// The concrete implementation (afero) lives in internal/adapters/afs so tests
// can run against an in-memory file system.
type Opener interface {
	// Open opens the named file for reading. The caller closes it.
	Open(name string) (io.ReadCloser, error)

	// IsDir returns true if name exists and is a directory.
	IsDir(name string) bool

	// Stdin returns the process standard input. It is shared by the "-"
	// target, the implicit no-argument pass and the NUL-delimited name list.
	Stdin() io.Reader
}
