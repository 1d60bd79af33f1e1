// xgrep is a regular expression search utility.
// It prints the lines of files or standard input that match any of its patterns.
package main

import (
	"os"

	"github.com/corey/xgrep/cmd/xgrep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.GrepExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(2)
	}
}
