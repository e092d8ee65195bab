package ioseq

import (
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
)

// DefaultBufferSize is the size of the reusable read buffer, and so the
// largest chunk a single pull can produce.
const DefaultBufferSize = 1024

// ChunkConfig holds the settings of a ChunkReader.
type ChunkConfig struct {
	BufferSize int
	Logger     *slog.Logger
}

type ChunkOption func(*ChunkConfig)

// WithBufferSize sets the read buffer size. Non-positive sizes are ignored.
func WithBufferSize(size int) ChunkOption {
	return func(c *ChunkConfig) {
		if size > 0 {
			c.BufferSize = size
		}
	}
}

// WithLogger sets the logger used to report end-of-source and read failures.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) ChunkOption {
	return func(c *ChunkConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func newChunkConfig(opts []ChunkOption) ChunkConfig {
	cfg := ChunkConfig{
		BufferSize: DefaultBufferSize,
		Logger:     slogx.NewBuilder().Silent().Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
