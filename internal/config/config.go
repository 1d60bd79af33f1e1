// Package config builds the immutable run configuration from command-line
// flags and XGREP_* environment variables, and validates it before any
// scanning starts.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/corey/xgrep/internal/ports"
)

// Flag names. They double as viper keys; the matching environment variable is
// XGREP_ followed by the upper-cased name with dashes turned into underscores.
const (
	KeyNullList     = "null-list"
	KeyCount        = "count"
	KeyNoEnhanced   = "no-enhanced"
	KeyPat          = "pat"
	KeyForceHdr     = "force-hdr"
	KeyNoHdr        = "no-hdr"
	KeyIgnoreCase   = "ignore-case"
	KeyLit          = "lit"
	KeyOnlyFilename = "only-filename"
	KeyMaxMatches   = "max-matches"
	KeyLineNum      = "line-num"
	KeyOnlyMatching = "only-matching"
	KeyQuiet        = "quiet"
	KeySkip         = "skip"
	KeyInvertMatch  = "invert-match"
	KeyLogLevel     = "log-level"
)

// EnvPrefix is the prefix of every environment variable viper consults.
const EnvPrefix = "XGREP"

// Config holds every mode switch and numeric parameter of a run. It is built
// once by Load and shared by pointer; nothing modifies it afterwards.
type Config struct {
	ListMode     bool // -0: target names come from stdin, NUL-delimited
	Count        bool
	NoEnhanced   bool
	ForceHeader  bool
	NoHeader     bool
	IgnoreCase   bool
	Literal      bool
	OnlyFilename bool
	LineNum      bool
	OnlyMatching bool
	Quiet        bool
	Skip         bool
	Invert       bool

	// MaxMatches is the per-file selection limit; 0 means no limit.
	MaxMatches int

	Patterns []string
	LogLevel string
}

// NewViper returns a viper instance bound to flags with XGREP_* environment
// overrides. Flags set on the command line win over the environment.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "warn")
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

// Load reads the switches from v, takes the patterns either from the pattern
// options or from the first positional argument, and validates the result.
// It returns the configuration and the remaining positional file arguments.
func Load(v *viper.Viper, patternOpts, args []string) (*Config, []string, error) {
	cfg := &Config{
		ListMode:     v.GetBool(KeyNullList),
		Count:        v.GetBool(KeyCount),
		NoEnhanced:   v.GetBool(KeyNoEnhanced),
		ForceHeader:  v.GetBool(KeyForceHdr),
		NoHeader:     v.GetBool(KeyNoHdr),
		IgnoreCase:   v.GetBool(KeyIgnoreCase),
		Literal:      v.GetBool(KeyLit),
		OnlyFilename: v.GetBool(KeyOnlyFilename),
		LineNum:      v.GetBool(KeyLineNum),
		OnlyMatching: v.GetBool(KeyOnlyMatching),
		Quiet:        v.GetBool(KeyQuiet),
		Skip:         v.GetBool(KeySkip),
		Invert:       v.GetBool(KeyInvertMatch),
		LogLevel:     v.GetString(KeyLogLevel),
	}
	if v.IsSet(KeyMaxMatches) {
		cfg.MaxMatches = v.GetInt(KeyMaxMatches)
		if cfg.MaxMatches <= 0 {
			return nil, nil, ports.Argumentf("-max-matches value must be greater than zero")
		}
	}

	files := args
	switch {
	case len(patternOpts) > 0:
		cfg.Patterns = append([]string(nil), patternOpts...)
	case len(args) > 0:
		cfg.Patterns = []string{args[0]}
		files = args[1:]
	}

	if err := cfg.Validate(len(files)); err != nil {
		return nil, nil, err
	}
	return cfg, files, nil
}

// Validate checks the switch combinations that are rejected before any
// scanning. fileArgs is the number of positional file arguments.
func (c *Config) Validate(fileArgs int) error {
	if c.ForceHeader && c.NoHeader {
		return ports.Argumentf("conflicting switches: -force-hdr and -no-hdr")
	}
	if c.NoHeader && c.OnlyFilename {
		return ports.Argumentf("conflicting switches: -no-hdr and -only-filename")
	}
	if c.MaxMatches < 0 {
		return ports.Argumentf("-max-matches value must be greater than zero")
	}
	if len(c.Patterns) == 0 {
		return ports.Argumentf("no search pattern specified")
	}
	if c.ListMode && fileArgs > 0 {
		return ports.Argumentf("file argument(s) not allowed with -0 switch")
	}
	return nil
}

// SingleFile reports whether the run scans at most one target, which turns
// off the default filename header.
func (c *Config) SingleFile(fileArgs int) bool {
	return !c.ListMode && fileArgs <= 1
}

// ShowHeader reports whether result lines carry a filename prefix.
func (c *Config) ShowHeader(single bool) bool {
	return c.ForceHeader || (!single && !c.NoHeader)
}

// ShortCircuit reports whether a file's scan can stop at its first selected
// line because only the existence of a selection matters.
func (c *Config) ShortCircuit() bool {
	return c.OnlyFilename || c.Quiet
}
