package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var errorLevels = []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}

var infoLevels = []logrus.Level{logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel}

// WriterHook writes formatted entries of the given levels to Out.
type WriterHook struct {
	Out       io.Writer
	LogLevels []logrus.Level
}

func (h *WriterHook) Levels() []logrus.Level {
	return h.LogLevels
}

func (h *WriterHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	_, err = h.Out.Write(line)
	return err
}

// SetupLogger sends info and below to stdout and warnings and errors to
// stderr on the standard logger.
func SetupLogger() {
	Configure(logrus.StandardLogger(), os.Stdout, os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

// Configure splits l's output by level between out and errOut.
func Configure(l *logrus.Logger, out, errOut io.Writer) {
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.ReplaceHooks(make(logrus.LevelHooks))
	l.AddHook(&WriterHook{Out: errOut, LogLevels: errorLevels})
	l.AddHook(&WriterHook{Out: out, LogLevels: infoLevels})
}

// SetLevel applies a textual level such as "debug".
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
