package util

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetupLogger : настраивает глобальный логгер один раз при старте
func SetupLogger(level string, pretty bool) {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func LogError(message string, err error) error {
	Logger.Error().Err(err).Msg(message)
	return fmt.Errorf("%s: %w", message, err)
}
