package cmd

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/corey/xgrep/internal/ports"
)

// formatter renders entries the way command-line tools report problems:
// "xgrep: message" for errors, with the level spelled out for anything less
// severe and any fields appended as k=v.
type formatter struct {
	prog string
}

func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(f.prog)
	b.WriteString(": ")
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
	case logrus.WarnLevel:
		b.WriteString("warning: ")
	default:
		b.WriteString(e.Level.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func newLogger(w io.Writer) *logrus.Logger {
	return &logrus.Logger{
		Out:       w,
		Formatter: &formatter{prog: "xgrep"},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.WarnLevel,
		ExitFunc:  func(int) {},
	}
}

// setLevel applies the configured level name to log.
func setLevel(log *logrus.Logger, name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return ports.Argumentf("invalid log level '%s'", name)
	}
	log.SetLevel(level)
	return nil
}
