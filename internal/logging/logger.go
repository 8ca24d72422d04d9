package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// DefaultOutput is where log entries go when no output path is given.
// The panel owns stdout, so logs never go there by default.
const DefaultOutput = "stderr"

// Initialize creates a new logger with the specified level writing to output.
// If level is empty, logging is disabled (silent mode).
// Valid levels: "debug", "info", "warn", "error".
// output is a zap output path: "stderr", "stdout" or a file path.
func Initialize(level, output string) error {
	// If no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	if output == "" {
		output = DefaultOutput
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stderr" || output == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger = built
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogCommand logs an outbound command datagram
func LogCommand(destination string, payload string, bytesSent int) {
	Info("Command sent",
		zap.String("destination", destination),
		zap.String("payload", payload),
		zap.Int("bytes", bytesSent),
	)
}

// LogSendFailure logs a command that could not be sent
func LogSendFailure(destination string, payload string, err error) {
	Warn("Command send failed",
		zap.String("destination", destination),
		zap.String("payload", payload),
		zap.Error(err),
	)
}

// LogDatagram logs a received datagram (used by the listen monitor)
func LogDatagram(remoteAddr string, data []byte) {
	fields := []zap.Field{
		zap.String("remote_addr", remoteAddr),
		zap.Int("length", len(data)),
		zap.String("ascii", asciiDump(data)),
	}

	if GetLogger().Core().Enabled(zapcore.DebugLevel) {
		fields = append(fields, zap.String("hex", hexDump(data)))
	}

	Info("Datagram received", fields...)
}

// LogStateChange logs a device state transition
func LogStateChange(key string, on bool) {
	Debug("Device state changed",
		zap.String("device", key),
		zap.Bool("on", on),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
