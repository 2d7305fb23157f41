package debug

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grindlemire/go-parts/internal/config"
)

// EnvFile overrides the configured log file when set.
const EnvFile = "PARTCALC_DEBUG"

var (
	global   atomic.Pointer[zap.Logger]
	initOnce sync.Once
	initErr  error
)

// Init builds the global logger. Console output goes to console; a file core
// is teed in when a log file is configured. Only the first call has effect.
func Init(cfg config.LoggerConfig, console zapcore.WriteSyncer) error {
	initOnce.Do(func() {
		var l *zap.Logger
		l, initErr = build(cfg, console)
		if initErr == nil {
			global.Store(l)
		}
	})
	return initErr
}

func build(cfg config.LoggerConfig, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), console, level),
	}

	file := cfg.File
	if env := strings.TrimSpace(os.Getenv(EnvFile)); env != "" {
		file = env
		level = zapcore.DebugLevel
	}
	if file != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder("json"), w, level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// Logger returns the global logger, or a no-op logger before Init.
func Logger() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sync flushes buffered records.
func Sync() error {
	if l := global.Load(); l != nil {
		return l.Sync()
	}
	return nil
}

// Reset drops the global logger so Init can run again. Tests only.
func Reset() {
	global.Store(nil)
	initOnce = sync.Once{}
	initErr = nil
}
