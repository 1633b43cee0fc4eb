package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Logger interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Errorln(args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Debugln(args ...interface{})

	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Warningln(args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Infoln(args ...interface{})

	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Fatalln(args ...interface{})
}

// ZeroLogger is a Logger writing structured entries through zerolog
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a Logger which writes JSON entries into w.
// An empty level means "info".
func New(w io.Writer, level string) (*ZeroLogger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return &ZeroLogger{
		log: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}, nil
}

// NewConsole creates a Logger which writes human readable entries into stderr
func NewConsole(level string) (*ZeroLogger, error) {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// Nop returns a Logger which discards everything
func Nop() *ZeroLogger {
	return &ZeroLogger{log: zerolog.Nop()}
}

// With returns a child logger which adds the field to every entry
func (z *ZeroLogger) With(key string, value interface{}) *ZeroLogger {
	return &ZeroLogger{log: z.log.With().Interface(key, value).Logger()}
}

func (z *ZeroLogger) Error(args ...interface{}) { z.log.Error().Msg(fmt.Sprint(args...)) }
func (z *ZeroLogger) Errorf(format string, args ...interface{}) {
	z.log.Error().Msgf(format, args...)
}
func (z *ZeroLogger) Errorln(args ...interface{}) { z.log.Error().Msg(sprintln(args...)) }

func (z *ZeroLogger) Debug(args ...interface{}) { z.log.Debug().Msg(fmt.Sprint(args...)) }
func (z *ZeroLogger) Debugf(format string, args ...interface{}) {
	z.log.Debug().Msgf(format, args...)
}
func (z *ZeroLogger) Debugln(args ...interface{}) { z.log.Debug().Msg(sprintln(args...)) }

func (z *ZeroLogger) Warning(args ...interface{}) { z.log.Warn().Msg(fmt.Sprint(args...)) }
func (z *ZeroLogger) Warningf(format string, args ...interface{}) {
	z.log.Warn().Msgf(format, args...)
}
func (z *ZeroLogger) Warningln(args ...interface{}) { z.log.Warn().Msg(sprintln(args...)) }

func (z *ZeroLogger) Info(args ...interface{}) { z.log.Info().Msg(fmt.Sprint(args...)) }
func (z *ZeroLogger) Infof(format string, args ...interface{}) {
	z.log.Info().Msgf(format, args...)
}
func (z *ZeroLogger) Infoln(args ...interface{}) { z.log.Info().Msg(sprintln(args...)) }

func (z *ZeroLogger) Fatal(args ...interface{}) { z.log.Fatal().Msg(fmt.Sprint(args...)) }
func (z *ZeroLogger) Fatalf(format string, args ...interface{}) {
	z.log.Fatal().Msgf(format, args...)
}
func (z *ZeroLogger) Fatalln(args ...interface{}) { z.log.Fatal().Msg(sprintln(args...)) }

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	if level == "warning" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

func sprintln(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
