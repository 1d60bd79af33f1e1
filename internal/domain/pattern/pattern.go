// Package pattern compiles raw pattern text into an ordered, immutable set of
// matchers. Each pattern is either a Literal (substring search) or a Regex;
// regexes that turn out to be plain strings are demoted to Literal because a
// substring search is much cheaper than running the regex engine.
package pattern

import (
	"github.com/sirupsen/logrus"

	"github.com/corey/xgrep/internal/adapters/ahocorasick"
	"github.com/corey/xgrep/internal/adapters/regex"
	"github.com/corey/xgrep/internal/ports"
)

// Kind identifies the matcher variant of a Pattern. It is fixed at compile
// time and never changes afterwards.
type Kind int

const (
	Literal Kind = iota
	Regex
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// Pattern is one compiled matcher plus the text it came from.
type Pattern struct {
	Kind    Kind
	Source  string
	Matcher ports.Matcher
}

// Options control compilation of every pattern in a set.
type Options struct {
	Literal    bool // -lit: raw text, no regex parsing, no escape processing
	IgnoreCase bool
	NoEnhanced bool // POSIX ERE syntax instead of Perl syntax
}

// Set is the ordered sequence of compiled patterns. It is built once by
// Compile and only read afterwards.
type Set struct {
	patterns []Pattern
}

// Compile builds a Set from raw pattern text, preserving order. It fails with
// a *ports.CompileError on the first pattern the regex engine rejects.
func Compile(raw []string, opts Options, log logrus.FieldLogger) (*Set, error) {
	set := &Set{patterns: make([]Pattern, 0, len(raw))}
	for _, text := range raw {
		p, err := compileOne(text, opts, log)
		if err != nil {
			return nil, err
		}
		set.patterns = append(set.patterns, p)
	}
	return set, nil
}

func compileOne(text string, opts Options, log logrus.FieldLogger) (Pattern, error) {
	if opts.Literal {
		return Pattern{
			Kind:    Literal,
			Source:  text,
			Matcher: ahocorasick.New(text, text, opts.IgnoreCase),
		}, nil
	}

	re, err := regex.Compile(text, regex.Flags{IgnoreCase: opts.IgnoreCase, POSIX: opts.NoEnhanced})
	if err != nil {
		return Pattern{}, &ports.CompileError{Pattern: text, Err: err}
	}
	if lit, fold, ok := re.Literal(); ok {
		log.WithFields(logrus.Fields{"pattern": text, "literal": lit}).Debug("pattern compiled as literal")
		return Pattern{
			Kind:    Literal,
			Source:  text,
			Matcher: ahocorasick.New(lit, text, fold),
		}, nil
	}
	return Pattern{Kind: Regex, Source: text, Matcher: re}, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int { return len(s.patterns) }

// Match evaluates the patterns in declared order against line and stops at
// the first one that matches. It returns that pattern's index and span, or
// -1 when no pattern matched. A matcher failure is returned as a
// *ports.ExecError naming the pattern.
func (s *Set) Match(line []byte) (int, ports.Span, error) {
	for i := range s.patterns {
		p := &s.patterns[i]
		span, ok, err := p.Matcher.Match(line)
		if err != nil {
			return -1, ports.Span{}, &ports.ExecError{Pattern: p.Matcher.Pattern(), Err: err}
		}
		if ok {
			return i, span, nil
		}
	}
	return -1, ports.Span{}, nil
}
