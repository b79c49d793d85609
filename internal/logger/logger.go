// ABOUTME: Process-wide structured logger built on zap
// ABOUTME: Logs to stderr, optionally teeing into a rotated file via lumberjack

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jdichev/forest/internal/config"
)

var (
	// L is the global sugared logger.
	L *zap.SugaredLogger
	// Z is the global zap.Logger.
	Z *zap.Logger

	fileWriter *lumberjack.Logger
)

func init() {
	Z = zap.NewNop()
	L = Z.Sugar()
}

// Config selects the log level and optional file sink.
type Config struct {
	Level string // debug, info, warn, error
	File  string // empty logs to stderr only
}

// FromConfig builds a logger Config from the application config.
func FromConfig(cfg *config.Config) Config {
	return Config{Level: cfg.GetLogLevel(), File: cfg.GetLogFile()}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level: %s", level)
	}
}

// Init configures the global logger. stderr is the only console sink so
// stdout stays reserved for JSON output and the MCP transport.
func Init(cfg Config) error {
	return InitWriter(cfg, os.Stderr)
}

// InitWriter is Init with an explicit console writer.
func InitWriter(cfg Config, console io.Writer) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	output := console
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    config.DefaultLogMaxSizeMB,
			MaxBackups: config.DefaultLogMaxBackups,
			MaxAge:     config.DefaultLogMaxAgeDays,
			Compress:   true,
		}
		output = io.MultiWriter(console, fileWriter)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(output),
		level,
	)

	Z = zap.New(core)
	L = Z.Sugar()
	return nil
}

// Sync flushes buffered entries and closes the log file, if any.
func Sync() {
	if Z != nil {
		_ = Z.Sync()
	}
	if fileWriter != nil {
		_ = fileWriter.Close()
	}
}

// With returns a child logger carrying the given key/value pairs.
func With(args ...interface{}) *zap.SugaredLogger { return L.With(args...) }

// Debugf logs a formatted debug message.
func Debugf(template string, args ...interface{}) { L.Debugf(template, args...) }

// Infof logs a formatted info message.
func Infof(template string, args ...interface{}) { L.Infof(template, args...) }

// Warnf logs a formatted warning.
func Warnf(template string, args ...interface{}) { L.Warnf(template, args...) }

// Errorf logs a formatted error.
func Errorf(template string, args ...interface{}) { L.Errorf(template, args...) }
