package input

import (
	"bufio"
	"errors"
	"io"

	"github.com/corey/xgrep/internal/ports"
)

// StdinName is the display name of the implicit standard-input target.
const StdinName = "(stdin)"

// Target is one input to scan.
type Target struct {
	Name  string // display name; "-" and the implicit pass read stdin outside list mode
	Stdin bool
}

// Enumerator yields targets either from positional file arguments or from a
// NUL-delimited name list read from standard input.
type Enumerator struct {
	files    []string
	list     *bufio.Reader
	listed   int
	implicit bool
	done     bool
}

// NewEnumerator returns an enumerator over files. In list mode the names are
// read from stdin instead and positional files are an ArgumentError. With
// list mode off and no files, the run makes a single pass over stdin.
func NewEnumerator(listMode bool, files []string, stdin io.Reader) (*Enumerator, error) {
	if listMode {
		if len(files) > 0 {
			return nil, ports.Argumentf("file argument(s) not allowed with -0 switch")
		}
		return &Enumerator{list: bufio.NewReader(stdin)}, nil
	}
	return &Enumerator{files: files, implicit: len(files) == 0}, nil
}

// Next returns the next target. ok is false when the targets are exhausted.
// In list mode an empty name list is reported as an ArgumentError once the
// list has been drained.
func (e *Enumerator) Next() (t Target, ok bool, err error) {
	if e.done {
		return Target{}, false, nil
	}
	switch {
	case e.list != nil:
		return e.nextListed()
	case e.implicit:
		e.done = true
		return Target{Name: StdinName, Stdin: true}, true, nil
	case len(e.files) == 0:
		e.done = true
		return Target{}, false, nil
	}
	name := e.files[0]
	e.files = e.files[1:]
	return Target{Name: name, Stdin: name == "-"}, true, nil
}

func (e *Enumerator) nextListed() (Target, bool, error) {
	for {
		name, err := e.list.ReadString(0)
		if err != nil && !errors.Is(err, io.EOF) {
			return Target{}, false, &ports.IOError{Op: "read", Name: StdinName, Err: err}
		}
		if n := len(name); n > 0 && name[n-1] == 0 {
			name = name[:n-1]
		}
		if name == "-" {
			// stdin is the list itself
			e.done = true
			return Target{}, false, ports.Argumentf("standard input '-' not allowed in -0 filename list")
		}
		if name != "" {
			e.listed++
			return Target{Name: name}, true, nil
		}
		if err != nil {
			e.done = true
			if e.listed == 0 {
				return Target{}, false, ports.Argumentf("empty filename list with -0 switch")
			}
			return Target{}, false, nil
		}
	}
}
