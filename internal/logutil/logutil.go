package logutil

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig - Configuration of the logger
//   - Level is one of debug, info, warn, error (default info)
//   - Format is console or json (default console)
//   - Filename is the log file, empty means standard error
//   - MaxSize is the max size in megabytes of a log file before it is rotated
//   - MaxDays is the max number of days to keep rotated log files
//   - MaxBackups is the max number of rotated log files to keep
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// NewLogger - Returns a zap logger built from the given configuration
func NewLogger(cfg LogConfig) (logger *zap.Logger, err error) {
	level, err := cfg.getLevel()
	if err != nil {
		return
	}

	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return
	}

	logger = newLogger(level, encoder, cfg.getSyncer())

	return
}

// newLogger - Assembles the logger from its parts
func newLogger(level zap.AtomicLevel, encoder zapcore.Encoder, syncer zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(encoder, syncer, level)
	return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller())
}

// getLevel - Parses the configured level, empty gives info
func (cfg LogConfig) getLevel() (level zap.AtomicLevel, err error) {
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level == "" {
		return
	}

	err = level.UnmarshalText([]byte(strings.ToLower(cfg.Level)))
	if err != nil {
		err = fmt.Errorf("invalid log level %q: %s", cfg.Level, err)
	}

	return
}

// getSyncer - Returns a rotating file syncer if a file name is configured, otherwise standard error
func (cfg LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

// getConsoleSyncer - Standard error, standard output is left to the menu
func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

// getLoggerEncoder - Returns the encoder for the given format
func getLoggerEncoder(format string) (encoder zapcore.Encoder, err error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	switch strings.ToLower(format) {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = fmt.Errorf("invalid log format %q, must be console or json", format)
	}

	return
}
