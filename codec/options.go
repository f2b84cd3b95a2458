package codec

import (
	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/internal/log"
	"github.com/arloliu/rsconv/internal/options"
)

type config struct {
	engine         endian.EndianEngine
	logger         log.Logger
	headerOnly     bool
	strictTrailing bool
}

func newConfig(opts ...Option) config {
	cfg := &config{
		engine: endian.GetWireEngine(),
		logger: log.Default(),
	}
	// options never fail; Apply only reports errors from option functions.
	_ = options.Apply(cfg, opts...)

	return *cfg
}

// Option configures a Decoder, Encoder, TextEncoder or TextDecoder.
type Option = options.Option[*config]

// WithEngine sets the byte order of the binary form. The default is the
// big-endian wire order.
func WithEngine(engine endian.EndianEngine) Option {
	return options.NoError(func(c *config) {
		if engine != nil {
			c.engine = engine
		}
	})
}

// WithLogger sets the logger receiving diagnostics.
func WithLogger(logger log.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithHeaderOnly makes the TextEncoder stop before the BODY record.
func WithHeaderOnly(headerOnly bool) Option {
	return options.NoError(func(c *config) {
		c.headerOnly = headerOnly
	})
}

// WithStrictTrailing makes the Decoder reject leaf payloads that are longer
// than their fixed layout instead of logging them.
func WithStrictTrailing(strict bool) Option {
	return options.NoError(func(c *config) {
		c.strictTrailing = strict
	})
}
