package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// Patterns is a repeatable flag value that keeps every pattern in the order
// it was given. -p and -e share one Patterns so they interleave correctly.
type Patterns []string

func (p *Patterns) String() string { return strings.Join(*p, " ") }

func (p *Patterns) Set(s string) error {
	*p = append(*p, s)
	return nil
}

func (p *Patterns) Type() string { return "pattern" }

// RegisterFlags defines the search switches on f. Pattern options accumulate
// into pats.
func RegisterFlags(f *pflag.FlagSet, pats *Patterns) {
	f.BoolP(KeyNullList, "0", false, "Read NUL-separated file names to search from standard input")
	f.BoolP(KeyCount, "c", false, "Display count of selected lines only")
	f.BoolP(KeyNoEnhanced, "E", false, "Use POSIX extended syntax instead of Perl syntax in patterns")
	f.VarP(pats, KeyPat, "p", "Use pattern `p` for searching (repeatable)")
	f.VarP(pats, "regexp", "e", "Alias for --pat (repeatable)")
	f.BoolP(KeyForceHdr, "H", false, "Always print filename header with output lines")
	f.BoolP(KeyNoHdr, "h", false, "Suppress filename header with output lines")
	f.BoolP(KeyIgnoreCase, "i", false, "Case-insensitive matching")
	f.BoolP(KeyLit, "L", false, "Interpret patterns as literal text")
	f.BoolP(KeyOnlyFilename, "l", false, "Display names of files containing selected lines only")
	f.IntP(KeyMaxMatches, "m", 0, "Stop scanning each file after `n` selected lines")
	f.BoolP(KeyLineNum, "n", false, "Precede each selected line by its line number")
	f.BoolP(KeyOnlyMatching, "o", false, "Display only the matching portion of selected lines")
	f.BoolP(KeyQuiet, "q", false, "Suppress normal output; stop scanning a file at its first selected line")
	f.BoolP(KeySkip, "s", false, "Skip directories and files that cannot be opened")
	f.BoolP(KeyInvertMatch, "v", false, "Select lines not matching any of the patterns")
	f.String(KeyLogLevel, "warn", "Diagnostic log level (error, warn, info, debug)")
}
