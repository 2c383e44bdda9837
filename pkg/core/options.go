package core

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"prae/pkg/progress"
)

// Option configures Pack, Unpack, List and ReadArchive.
type Option func(*config)

type config struct {
	logger  *log.Logger
	codec   Codec
	tracker *progress.Tracker
}

// WithLogger sets the logger used for skipped files and summaries.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCodec selects the compression codec of the stored archive.
func WithCodec(codec Codec) Option {
	return func(c *config) {
		c.codec = codec
	}
}

// WithProgress reports every packed or unpacked file to t.
func WithProgress(t *progress.Tracker) Option {
	return func(c *config) {
		c.tracker = t
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{codec: DefaultCodec}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NewLogger(os.Stderr)
	}
	return cfg
}

// NewLogger returns the logger used when none is supplied.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "prae",
	})
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
