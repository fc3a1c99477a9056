package juritok

import (
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-juritok/retok"
)

// RuleSet selects a version of the boundary rules.
type RuleSet = retok.RuleSet

// Available rule sets.
const (
	RuleSetV2 = retok.RuleSetV2
	RuleSetV1 = retok.RuleSetV1
)

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	poolSize         int
	logger           *slog.Logger
	ruleSet          RuleSet
	specialCases     []string
	specialCasesPath string
	suppressEmpty    bool
}

func defaultConfig() config {
	return config{
		poolSize:      runtime.NumCPU(),
		logger:        slog.Default(),
		ruleSet:       RuleSetV2,
		suppressEmpty: true,
	}
}

// WithPoolSize sets the number of base tokenizers (default: runtime.NumCPU()).
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
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

// WithRuleSet selects the boundary rules (default: RuleSetV2).
func WithRuleSet(r RuleSet) Option {
	return func(c *config) {
		c.ruleSet = r
	}
}

// WithSpecialCases adds literals the base tokenizer must never split.
func WithSpecialCases(cases ...string) Option {
	return func(c *config) {
		c.specialCases = append(c.specialCases, cases...)
	}
}

// WithSpecialCasesFile adds the special cases listed in path, one per line.
func WithSpecialCasesFile(path string) Option {
	return func(c *config) {
		c.specialCasesPath = path
	}
}

// WithSuppressEmptySentenceDiagnostics controls whether discarded empty
// sentences are logged (default: true, not logged).
func WithSuppressEmptySentenceDiagnostics(suppress bool) Option {
	return func(c *config) {
		c.suppressEmpty = suppress
	}
}
