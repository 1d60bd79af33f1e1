package ports

import "fmt"

// ArgumentError reports a bad, missing or conflicting command-line switch or
// argument. Nothing is scanned when it occurs.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// Argumentf builds an ArgumentError from a format string.
func Argumentf(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// CompileError reports a pattern the regular-expression engine rejected.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid RE '%s': %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// OpenError reports a target that could not be opened or is a directory.
// It is the only error the skip policy may swallow.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// IOError reports a read or write failure in the middle of a run.
type IOError struct {
	Op   string // "read", "write" or "close"
	Name string
	Err  error
}

func (e *IOError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ExecError reports a matcher that failed while executing against a line.
type ExecError struct {
	Pattern string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v, matching pattern '%s'", e.Err, e.Pattern)
}

func (e *ExecError) Unwrap() error { return e.Err }
