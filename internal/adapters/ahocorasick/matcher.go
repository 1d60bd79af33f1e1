// Package ahocorasick provides literal substring matching for fixed-string
// patterns. Case-insensitive needles run on an Aho-Corasick automaton from
// the petar-dambovaliev/aho-corasick library; case-sensitive needles use
// bytes.Index, which is faster than the automaton for a single needle.
package ahocorasick

import (
	"bytes"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/xgrep/internal/ports"
)

// Matcher implements ports.Matcher for a single fixed string.
// New() compiles the automaton once; Match() reports the leftmost occurrence.
type Matcher struct {
	automaton aho.AhoCorasick
	folded    bool // automaton is built and used
	needle    []byte
	source    string
}

// New prepares a matcher for needle. source is the pattern text as the
// user wrote it (it differs from needle when escapes were removed).
// With ignoreCase, ASCII letters match regardless of case.
func New(needle, source string, ignoreCase bool) *Matcher {
	m := &Matcher{needle: []byte(needle), source: source}
	if !ignoreCase || needle == "" {
		return m
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		AsciiCaseInsensitive: true,
		MatchKind:            aho.LeftMostFirstMatch,
		DFA:                  true,
	})
	m.automaton = builder.Build([]string{needle})
	m.folded = true
	return m
}

// Match returns the span of the leftmost occurrence of the needle in line.
// An empty needle matches every line at offset zero.
func (m *Matcher) Match(line []byte) (ports.Span, bool, error) {
	if !m.folded {
		i := bytes.Index(line, m.needle)
		if i < 0 {
			return ports.Span{}, false, nil
		}
		return ports.Span{Start: i, End: i + len(m.needle)}, true, nil
	}
	if len(line) < len(m.needle) {
		return ports.Span{}, false, nil
	}
	// The iterator stops at the first leftmost match and reads line in place.
	match := m.automaton.IterByte(line).Next()
	if match == nil {
		return ports.Span{}, false, nil
	}
	return ports.Span{Start: match.Start(), End: match.End()}, true, nil
}

// Pattern returns the source text of the pattern.
func (m *Matcher) Pattern() string { return m.source }
