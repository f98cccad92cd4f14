package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gejohann/lazylog/encoder"
)

// FileConfig holds configuration for a file sink
type FileConfig struct {
	// Path is the log file path (required)
	Path string
	// Encoder to use (default: TextEncoder)
	Encoder encoder.Encoder
	// MaxSizeMB is the maximum file size before rotation (default: 100)
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int
	// MaxAgeDays is the maximum age of rotated files (default: 7)
	MaxAgeDays int
	// Compress enables gzip compression of rotated files
	Compress bool
}

// FileSink writes encoded events to a file, rotating by size via
// lumberjack and pruning old backups by count and age.
type FileSink struct {
	*WriterSink
	out *lumberjack.Logger
}

// NewFileSink creates a new file sink, creating the log directory if it
// does not exist.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file sink: empty path")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("file sink: create log directory: %w", err)
		}
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 7
	}

	out := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	return &FileSink{
		WriterSink: NewWriterSink(WriterConfig{
			Writer:  out,
			Encoder: cfg.Encoder,
			// lumberjack serializes writes internally
			ConcurrentWriter: true,
		}),
		out: out,
	}, nil
}

// Rotate forces a rotation of the current log file.
func (s *FileSink) Rotate() error {
	return s.out.Rotate()
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	return s.out.Close()
}

var (
	_ Sink     = (*FileSink)(nil)
	_ Recycler = (*FileSink)(nil)
)
