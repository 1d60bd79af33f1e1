package cmd

import "fmt"

// grepExit is returned by the root command to signal a specific exit code.
// 0=selected, 1=nothing selected, 2=error.
type grepExit struct{ code int }

func (e grepExit) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "no lines selected"
	default:
		return fmt.Sprintf("xgrep error (exit %d)", e.code)
	}
}

// GrepExitCode extracts the exit code from a grepExit error.
// Returns -1 if the error is not a grepExit.
func GrepExitCode(err error) int {
	if ge, ok := err.(grepExit); ok {
		return ge.code
	}
	return -1
}
