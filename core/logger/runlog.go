package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunLog is a plain text log file written during one comparison run.
// Every entry is a single "time - LEVEL - message" line.
type RunLog struct {
	*zap.Logger
	path string
	file *os.File
}

// OpenRunLog creates (or truncates) the log file at path.
// Callers must Close it once the run is over.
func OpenRunLog(path string) (*RunLog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " - ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.InfoLevel)

	return &RunLog{
		Logger: zap.New(core),
		path:   abs,
		file:   f,
	}, nil
}

// Path returns the absolute path of the log file.
func (r *RunLog) Path() string {
	return r.path
}

// Close flushes pending entries and closes the file.
func (r *RunLog) Close() error {
	_ = r.Logger.Sync()
	return r.file.Close()
}
