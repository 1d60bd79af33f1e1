// Package scan runs a pattern set over the lines of one input stream and
// writes the selected lines.
package scan

import (
	"errors"
	"io"

	"github.com/corey/xgrep/internal/adapters/output"
	"github.com/corey/xgrep/internal/config"
	"github.com/corey/xgrep/internal/domain/input"
	"github.com/corey/xgrep/internal/domain/pattern"
	"github.com/corey/xgrep/internal/ports"
)

// Driver scans streams against a fixed pattern set and configuration. It
// holds no per-file state, so one Driver serves the whole run.
type Driver struct {
	patterns *pattern.Set
	cfg      *config.Config
	out      *output.Writer
}

// NewDriver returns a Driver writing result lines to out.
func NewDriver(patterns *pattern.Set, cfg *config.Config, out *output.Writer) *Driver {
	return &Driver{patterns: patterns, cfg: cfg, out: out}
}

// Scan reads src to the end (or until a stopping condition) and returns the
// number of selected lines. name is the display name used in the filename
// header; single is true when the run has at most one target.
//
// Scanning stops early after the first selection in filename-only and quiet
// modes, and as soon as the count reaches the match limit. A read error is a
// *ports.IOError; a matcher failure is a *ports.ExecError.
func (d *Driver) Scan(src *input.LineSource, name string, single bool) (int, error) {
	header := d.cfg.ShowHeader(single)
	selected := 0
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return selected, nil
		}
		if err != nil {
			return selected, &ports.IOError{Op: "read", Name: name, Err: err}
		}

		idx, span, err := d.patterns.Match(line)
		if err != nil {
			return selected, err
		}
		if (idx >= 0) == d.cfg.Invert {
			continue
		}

		if d.cfg.ShortCircuit() {
			return 1, nil
		}
		if !d.cfg.Count {
			if err := d.emit(name, header, src.LineNo(), line, idx, span); err != nil {
				return selected, err
			}
		}

		selected++
		if selected == d.cfg.MaxMatches {
			return selected, nil
		}
	}
}

// emit writes one result line: [name:][lineno:]text. In only-matching mode
// text is the matched span; a line selected through inversion has no span
// and produces no output.
func (d *Driver) emit(name string, header bool, lineNo int, line []byte, idx int, span ports.Span) error {
	if d.cfg.OnlyMatching {
		if idx < 0 {
			return nil
		}
		line = line[span.Start:span.End]
	}
	// out keeps the first write error; the closing WriteByte reports it.
	if header {
		d.out.WriteString(name)
		d.out.WriteByte(':')
	}
	if d.cfg.LineNum {
		d.out.WriteInt(lineNo)
		d.out.WriteByte(':')
	}
	d.out.Write(line)
	if err := d.out.WriteByte('\n'); err != nil {
		return &ports.IOError{Op: "write", Err: err}
	}
	return nil
}
