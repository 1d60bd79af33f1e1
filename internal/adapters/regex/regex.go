// Package regex adapts Go's RE2 engine (regexp, regexp/syntax) to ports.Matcher.
// Besides compiling and executing patterns it reports whether a pattern is a
// plain literal in disguise, so callers can hand it to a cheaper literal matcher.
package regex

import (
	"regexp"
	"regexp/syntax"
	"unicode/utf8"

	"github.com/corey/xgrep/internal/ports"
)

// Flags control how a pattern is parsed.
type Flags struct {
	IgnoreCase bool
	// POSIX selects POSIX ERE syntax with leftmost-longest matching instead of
	// the Perl-style syntax (\d, \w, non-greedy repetition, flag groups).
	POSIX bool
}

// Matcher implements ports.Matcher with a compiled regular expression.
type Matcher struct {
	re     *regexp.Regexp
	source string
	tree   *syntax.Regexp
}

// Compile parses and compiles text. Syntax errors are returned as-is; the
// caller wraps them with the offending pattern.
func Compile(text string, flags Flags) (*Matcher, error) {
	parseFlags := syntax.Perl
	if flags.POSIX {
		parseFlags = syntax.POSIX
	}
	if flags.IgnoreCase {
		parseFlags |= syntax.FoldCase
	}
	tree, err := syntax.Parse(text, parseFlags)
	if err != nil {
		return nil, err
	}

	// The tree has been validated under the requested syntax, so the source
	// can be compiled with the case flag prepended in Perl syntax.
	expr := text
	if flags.IgnoreCase {
		expr = "(?i)" + text
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	if flags.POSIX {
		re.Longest()
	}
	return &Matcher{re: re, source: text, tree: tree.Simplify()}, nil
}

// Match runs the expression against line and returns the leftmost match.
func (m *Matcher) Match(line []byte) (ports.Span, bool, error) {
	loc := m.re.FindIndex(line)
	if loc == nil {
		return ports.Span{}, false, nil
	}
	return ports.Span{Start: loc[0], End: loc[1]}, true, nil
}

// Pattern returns the source text of the pattern.
func (m *Matcher) Pattern() string { return m.source }

// Literal reports whether the pattern uses no regex-only syntax, and if so
// returns the fixed string it matches, with escapes removed (`a\.b` gives
// "a.b"), and whether that string must be matched without regard to case.
// An empty pattern is the empty literal.
//
// A case-folded literal is only reported when ASCII case folding gives the
// same result as Unicode folding: every rune is ASCII and none of them folds
// to a non-ASCII rune (k → U+212A KELVIN SIGN, s → U+017F LONG S).
func (m *Matcher) Literal() (text string, foldCase bool, ok bool) {
	switch m.tree.Op {
	case syntax.OpEmptyMatch:
		return "", false, true
	case syntax.OpLiteral:
	default:
		return "", false, false
	}
	foldCase = m.tree.Flags&syntax.FoldCase != 0
	if foldCase && !asciiFoldable(m.tree.Rune) {
		return "", false, false
	}
	return string(m.tree.Rune), foldCase, true
}

func asciiFoldable(runes []rune) bool {
	for _, r := range runes {
		if r >= utf8.RuneSelf {
			return false
		}
		switch r {
		case 'k', 'K', 's', 'S':
			return false
		}
	}
	return true
}
