package ports

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Matcher executes one compiled pattern against a single line.
// The concrete implementations are the Aho-Corasick literal matcher
// (internal/adapters/ahocorasick) and the regular-expression matcher
// (internal/adapters/regex). A Matcher is immutable after construction and
// may be reused for every line of every file in a run.
type Matcher interface {
	// Match reports whether the pattern occurs in line (which never includes
	// its terminator) and, if so, the leftmost matched span. An error means
	// the match could not be executed; callers treat it as fatal.
	Match(line []byte) (Span, bool, error)

	// Pattern returns the source text the matcher was built from, used in
	// diagnostics.
	Pattern() string
}
