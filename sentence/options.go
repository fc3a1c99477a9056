package sentence

import "log/slog"

// Option configures a Reassembler.
type Option func(*config)

type config struct {
	logger                   *slog.Logger
	suppressEmptyDiagnostics bool
}

func defaultConfig() config {
	return config{
		logger:                   slog.Default(),
		suppressEmptyDiagnostics: true,
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSuppressEmptySentenceDiagnostics controls whether discarded empty
// sentence candidates, such as blank lines, are logged (default: true, not logged).
func WithSuppressEmptySentenceDiagnostics(suppress bool) Option {
	return func(c *config) {
		c.suppressEmptyDiagnostics = suppress
	}
}
