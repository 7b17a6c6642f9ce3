package logger

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

var (
	root = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	once sync.Once
)

// InitLogger sets the process-wide log level. Loggers created before the
// first call keep the default info level.
func InitLogger(level string) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			lvl = zerolog.InfoLevel
		}
		root = root.Level(lvl)
	})
}

// Logger is a component-tagged logger.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(tag string) *Logger {
	return &Logger{log: root.With().Str("component", tag).Logger()}
}

func (l *Logger) Debug(v ...interface{}) {
	l.log.Debug().Msg(fmt.Sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.log.Info().Msg(fmt.Sprint(v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.log.Warn().Msg(fmt.Sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.log.Error().Msg(fmt.Sprint(v...))
}

// Fatal logs the message and exits the process.
func (l *Logger) Fatal(v ...interface{}) {
	l.log.Fatal().Msg(fmt.Sprint(v...))
}
