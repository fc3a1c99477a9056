package retok

import (
	"fmt"
	"log/slog"
	"strings"
)

// RuleSet selects a version of the boundary rules.
type RuleSet int

const (
	// RuleSetV2 adds the leading-hyphen split and restricts hyphenated names
	// to ASCII letters. It is the default.
	RuleSetV2 RuleSet = iota
	// RuleSetV1 is the first rule set, kept for comparison.
	RuleSetV1
)

func (r RuleSet) String() string {
	switch r {
	case RuleSetV1:
		return "v1"
	case RuleSetV2:
		return "v2"
	default:
		return fmt.Sprintf("RuleSet(%d)", int(r))
	}
}

// ParseRuleSet parses "v1" or "v2".
func ParseRuleSet(s string) (RuleSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1":
		return RuleSetV1, nil
	case "v2", "":
		return RuleSetV2, nil
	default:
		return 0, fmt.Errorf("retok: unknown rule set %q", s)
	}
}

// Option configures a Corrector.
type Option func(*config)

type config struct {
	ruleSet RuleSet
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		ruleSet: RuleSetV2,
		logger:  slog.Default(),
	}
}

// WithRuleSet selects the rule set (default: RuleSetV2).
func WithRuleSet(r RuleSet) Option {
	return func(c *config) {
		c.ruleSet = r
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
