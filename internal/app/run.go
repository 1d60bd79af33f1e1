// Package app wires configuration, patterns, inputs and output together and
// drives a complete search run: iterate targets, scan each one, print the
// per-file and aggregate summaries, and report whether anything was selected.
package app

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/corey/xgrep/internal/adapters/output"
	"github.com/corey/xgrep/internal/config"
	"github.com/corey/xgrep/internal/domain/input"
	"github.com/corey/xgrep/internal/domain/pattern"
	"github.com/corey/xgrep/internal/domain/scan"
	"github.com/corey/xgrep/internal/ports"
)

var errIsDirectory = errors.New("is a directory")

// Controller runs one search over a list of targets. It is single use.
type Controller struct {
	cfg    *config.Config
	opener ports.Opener
	out    *output.Writer
	driver *scan.Driver
	log    logrus.FieldLogger
}

// New compiles the configured patterns and prepares a run writing to dst.
// dst is closed when Run returns if it implements io.Closer.
func New(cfg *config.Config, opener ports.Opener, dst io.Writer, log logrus.FieldLogger) (*Controller, error) {
	set, err := pattern.Compile(cfg.Patterns, pattern.Options{
		Literal:    cfg.Literal,
		IgnoreCase: cfg.IgnoreCase,
		NoEnhanced: cfg.NoEnhanced,
	}, log)
	if err != nil {
		return nil, err
	}
	log.WithField("patterns", set.Len()).Debug("patterns compiled")
	out := output.New(dst)
	return &Controller{
		cfg:    cfg,
		opener: opener,
		out:    out,
		driver: scan.NewDriver(set, cfg, out),
		log:    log,
	}, nil
}

// Run scans every target named by files (or by the NUL-delimited list on
// stdin in list mode) and reports whether any line was selected. The output
// is flushed and closed on every path; a failure to close it fails the run.
func (c *Controller) Run(files []string) (selected bool, err error) {
	defer func() {
		if cerr := c.out.Close(); cerr != nil && err == nil {
			err = &ports.IOError{Op: "close", Name: "standard output", Err: cerr}
		}
	}()

	targets, err := input.NewEnumerator(c.cfg.ListMode, files, c.opener.Stdin())
	if err != nil {
		return false, err
	}
	single := c.cfg.SingleFile(len(files))

	total := 0
	for {
		t, ok, err := targets.Next()
		if err != nil {
			return selected, err
		}
		if !ok {
			break
		}

		n, err := c.scanTarget(t, single)
		if err != nil {
			var oe *ports.OpenError
			if c.cfg.Skip && errors.As(err, &oe) {
				c.log.WithFields(logrus.Fields{"target": t.Name, "reason": oe.Err}).Debug("skipped target")
				continue
			}
			return selected, err
		}
		c.log.WithFields(logrus.Fields{"target": t.Name, "selected": n}).Debug("scanned target")

		total += n
		if n > 0 {
			selected = true
		}
		if err := c.summarize(t.Name, n); err != nil {
			return selected, err
		}
	}

	if !c.cfg.Quiet && c.cfg.Count && c.cfg.NoHeader {
		if err := c.writeTotal(total); err != nil {
			return selected, err
		}
	}
	return selected, nil
}

// scanTarget opens t, scans it and closes it again on every path.
func (c *Controller) scanTarget(t input.Target, single bool) (n int, err error) {
	if t.Stdin {
		return c.driver.Scan(input.NewLineSource(c.opener.Stdin()), t.Name, single)
	}

	if c.opener.IsDir(t.Name) {
		return 0, &ports.OpenError{Name: t.Name, Err: errIsDirectory}
	}
	rc, err := c.opener.Open(t.Name)
	if err != nil {
		return 0, &ports.OpenError{Name: t.Name, Err: err}
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = &ports.IOError{Op: "close", Name: t.Name, Err: cerr}
		}
	}()
	return c.driver.Scan(input.NewLineSource(rc), t.Name, single)
}

// summarize writes the per-file line: "name:count" in count mode, or "name"
// in filename-only mode when the file had a selection. Quiet and no-header
// modes suppress it.
func (c *Controller) summarize(name string, n int) error {
	if c.cfg.Quiet || c.cfg.NoHeader {
		return nil
	}
	// out keeps the first write error; the closing WriteByte reports it.
	switch {
	case c.cfg.Count:
		c.out.WriteString(name)
		c.out.WriteByte(':')
		c.out.WriteInt(n)
	case c.cfg.OnlyFilename && n > 0:
		c.out.WriteString(name)
	default:
		return nil
	}
	if err := c.out.WriteByte('\n'); err != nil {
		return &ports.IOError{Op: "write", Err: err}
	}
	return nil
}

func (c *Controller) writeTotal(total int) error {
	c.out.WriteInt(total)
	if err := c.out.WriteByte('\n'); err != nil {
		return &ports.IOError{Op: "write", Err: err}
	}
	return nil
}
