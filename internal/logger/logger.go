package logger

import (
	"os"
	"strings"
	"time"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Logger mínimo até o Init ser chamado pelo fx
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global conforme a configuração.
// Em desenvolvimento usa o console writer legível; em produção, JSON puro.
func Init(cfg *config.Config) {
	level := parseLevel(cfg.Log.Level)
	zerolog.SetGlobalLevel(level)

	if cfg.IsProduction() {
		log = zerolog.New(os.Stdout).With().
			Timestamp().
			Str("app", cfg.App.Name).
			Logger()
		return
	}

	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log = zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
