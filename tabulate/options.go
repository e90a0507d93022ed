package tabulate

import (
	"os"

	"github.com/rs/zerolog"
)

// Option is a set of configurable parameters. If left empty, defaults
// will be used
type Option func(c *config)

type config struct {
	logger zerolog.Logger
}

func defaultConfig() config {
	return config{logger: zerolog.New(os.Stdout)}
}

// WithLogger sets the logger that audit events such as per-round
// rankings and eliminations are emitted on.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
