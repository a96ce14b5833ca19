package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig enables a rotating JSON file next to the console output.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewZapLogger builds a console logger named name. Messages below level are
// dropped.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	return NewZapFileLogger(name, level, FileConfig{})
}

// NewZapFileLogger is NewZapLogger plus a lumberjack sink when file.Path is
// set.
func NewZapFileLogger(name string, level zapcore.Level, file FileConfig) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	}

	if file.Path != "" {
		writer := &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		Named(name).
		Sugar()
}
