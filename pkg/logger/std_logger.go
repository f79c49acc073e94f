package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// configuration :
// Settings applied to a StdLogger, parsed from the process
// configuration on creation.
//
// The `AppName` identifies the application in every emitted line.
// The default value is "novaturn".
//
// The `Environment` separates pretty console output (development)
// from structured JSON (anything else), matching how the log
// stream is consumed downstream.
// The default value is "development".
//
// The `Level` is the minimum severity that reaches the sink.
// The default value is "info".
type configuration struct {
	AppName     string
	Environment string
	Level       string
}

// StdLogger :
// Leveled logger backed by zerolog, behind the same `Logger`
// interface used throughout this module regardless of backend.
//
// The `config` holds the parsed settings.
//
// The `instanceID` tags every line with the running game-server
// instance, useful when several turn engines share a log sink.
//
// The `zl` is the underlying zerolog logger doing the actual
// formatting and writing.
type StdLogger struct {
	config     configuration
	instanceID string
	zl         zerolog.Logger
}

var severityToZerolog = [...]zerolog.Level{
	zerolog.TraceLevel,
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
	zerolog.FatalLevel,
	zerolog.PanicLevel,
}

// parseConfiguration :
// Retrieves logger settings from viper, falling back to sane
// defaults when the configuration file doesn't set them.
func parseConfiguration() configuration {
	config := configuration{
		AppName:     "novaturn",
		Environment: "development",
		Level:       "info",
	}

	if viper.IsSet("logger.name") {
		config.AppName = viper.GetString("logger.name")
	}
	if viper.IsSet("logger.environment") {
		config.Environment = viper.GetString("logger.environment")
	}
	if viper.IsSet("logger.level") {
		config.Level = viper.GetString("logger.level")
	}

	return config
}

// NewStdLogger :
// Builds a zerolog-backed logger tagged with the given instance
// identifier. In development the output is a human-readable
// console writer; elsewhere it's newline-delimited JSON suited to
// log aggregation.
func NewStdLogger(instanceID string) Logger {
	config := parseConfiguration()
	if instanceID == "" {
		instanceID = "local"
	}

	var writer zerolog.Logger
	if config.Environment == "development" {
		writer = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		writer = zerolog.New(os.Stdout)
	}

	zl := writer.With().
		Timestamp().
		Str("app", config.AppName).
		Str("instance", instanceID).
		Logger().
		Level(parseZerologLevel(config.Level))

	return &StdLogger{
		config:     config,
		instanceID: instanceID,
		zl:         zl,
	}
}

// parseZerologLevel :
// Maps the configured minimum severity name onto a zerolog.Level,
// defaulting to info on an unrecognized value.
func parseZerologLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Trace :
// Emits a log line at the given severity tagged with the module
// that produced it.
func (log *StdLogger) Trace(level Severity, module string, message string) {
	zlLevel := zerolog.InfoLevel
	if int(level) >= 0 && int(level) < len(severityToZerolog) {
		zlLevel = severityToZerolog[level]
	}
	log.zl.WithLevel(zlLevel).Str("module", module).Msg(message)
}
