package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/corey/xgrep/internal/adapters/afs"
	"github.com/corey/xgrep/internal/app"
	"github.com/corey/xgrep/internal/config"
	"github.com/corey/xgrep/internal/ports"
)

const version = "1.0.0"

const copyright = "xgrep (c) Copyright 2022 Richard W. Marinelli"

const usage = `Usage:
    xgrep {-?, --usage | -C, --copyright | --help | -V, --version}
    xgrep [-0] [-c, --count] [-E, --no-enhanced] [-e p] [-H, --force-hdr]
     [-h, --no-hdr] [-i, --ignore-case] [-L, --lit] [-l, --only-filename]
     [-m, --max-matches n] [-n, --line-num] [-o, --only-matching] [-p, --pat p]
     [-q, --quiet] [-s, --skip] [-v, --invert-match] [pat] [file ...]`

const long = `xgrep -- Regular expression search utility.

Prints the lines of each file (or of standard input) matching at least one
pattern. Patterns use Perl syntax unless -E selects POSIX extended syntax.

Notes:
 1. Either a --pat switch or pat argument must be specified. If the former, the
    pat argument must be omitted.
 2. A line is selected if at least one pattern matches it without its
    terminating newline.
 3. The --line-num and --only-matching switches are ignored if --count,
    --only-filename or --quiet is specified.
 4. A file named "-" is standard input. With -0 the names of the files to
    search are read from standard input, separated by null characters (see
    the -print0 switch of find(1)).
 5. Switch defaults may be set with XGREP_* environment variables, for
    example XGREP_LINE_NUM=true or XGREP_LOG_LEVEL=debug.
 6. Exit status is 0 if one or more lines were selected, 1 if no lines were
    selected, or 2 if an error occurred.`

// Execute runs the root command against the host file system and maps its
// outcome to a grepExit error.
func Execute() error {
	log := newLogger(os.Stderr)
	return execute(newRootCmd(afero.NewOsFs(), log), log)
}

// execute runs root and reports any failure that is not already an exit
// code on log, turning it into exit code 2.
func execute(root *cobra.Command, log *logrus.Logger) error {
	err := root.Execute()
	if err == nil || GrepExitCode(err) >= 0 {
		return err
	}
	log.Error(err)
	return grepExit{2}
}

func newRootCmd(fs afero.Fs, log *logrus.Logger) *cobra.Command {
	var (
		pats          config.Patterns
		showCopyright bool
		showUsage     bool
	)

	root := &cobra.Command{
		Use:           "xgrep [flags] [pat] [file ...]",
		Short:         "Regular expression search utility",
		Long:          long,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := root.Flags()
	f.SetInterspersed(false)
	config.RegisterFlags(f, &pats)
	f.BoolVarP(&showCopyright, "copyright", "C", false, "Display copyright information and exit")
	f.BoolVarP(&showUsage, "usage", "?", false, "Display usage and exit")
	f.BoolP("version", "V", false, "Display program version and exit")
	f.Bool("help", false, "Display detailed help and exit")

	root.SetVersionTemplate("{{.Name}} {{.Version}} (GPLv3)\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return ports.Argumentf("%v", err)
	})

	root.RunE = func(c *cobra.Command, args []string) error {
		switch {
		case showCopyright:
			fmt.Fprintln(c.OutOrStdout(), copyright)
			return nil
		case showUsage:
			fmt.Fprintln(c.OutOrStdout(), usage)
			return nil
		case c.Flags().NFlag() == 0 && len(args) == 0:
			return c.Help()
		}
		return runSearch(c, fs, log, pats, args)
	}
	return root
}

// runSearch loads the configuration, runs the search and converts its
// outcome into an exit code.
func runSearch(c *cobra.Command, fs afero.Fs, log *logrus.Logger, pats config.Patterns, args []string) error {
	v, err := config.NewViper(c.Flags())
	if err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	cfg, files, err := config.Load(v, pats, args)
	if err != nil {
		return err
	}
	if err := setLevel(log, cfg.LogLevel); err != nil {
		return err
	}

	ctl, err := app.New(cfg, afs.New(fs, c.InOrStdin()), c.OutOrStdout(), log)
	if err != nil {
		return err
	}
	selected, err := ctl.Run(files)
	if err != nil {
		return err
	}
	if selected {
		return grepExit{0}
	}
	return grepExit{1}
}
