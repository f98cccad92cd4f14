package logger

import (
	"fmt"
	"os"

	"github.com/gejohann/lazylog/config"
	"github.com/gejohann/lazylog/encoder"
	"github.com/gejohann/lazylog/sink"
)

// FromConfig wires a Factory from a loaded Config: encoder, output
// sink, optional async wrapper, and the severity registry.
func FromConfig(cfg *config.Config) (*Factory, error) {
	registry, err := config.BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	encCfg := encoder.Config{IncludeCaller: cfg.IncludeCaller}
	var enc encoder.Encoder
	switch cfg.Format {
	case "", "text":
		enc = encoder.NewTextEncoder(encCfg)
	case "json":
		enc = encoder.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}

	var out sink.Sink
	switch cfg.Output {
	case "", "stderr":
		out = sink.NewWriterSink(sink.WriterConfig{Writer: os.Stderr, Encoder: enc})
	case "stdout":
		out = sink.NewWriterSink(sink.WriterConfig{Writer: os.Stdout, Encoder: enc})
	case "file":
		out, err = sink.NewFileSink(sink.FileConfig{
			Path:       cfg.FilePath,
			Encoder:    enc,
			MaxSizeMB:  cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown output %q", cfg.Output)
	}

	if cfg.Async {
		out = sink.NewAsyncSink(out, sink.AsyncConfig{BufferSize: cfg.BufferSize})
	}

	return NewBuilder().
		WithRegistry(registry).
		WithSink(out).
		WithCaller(cfg.IncludeCaller).
		Build(), nil
}
