// Package retok fixes token boundaries that a general-purpose French tokenizer
// gets wrong on court decisions.
//
// Split rules run first, token by token, and every piece they produce is fed
// back through them. The hyphenated-name merge then runs over the text rebuilt
// from the split stream, so it always sees post-split offsets.
package retok

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-juritok/tokenizer"
)

// Corrector applies the boundary rules of one rule set. It holds no per-call
// state and is safe for concurrent use.
type Corrector struct {
	ruleSet    RuleSet
	splits     []splitRule
	hyphenName *regexp.Regexp
	logger     *slog.Logger
}

// New creates a Corrector.
func New(opts ...Option) *Corrector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Corrector{
		ruleSet: cfg.ruleSet,
		logger:  cfg.logger,
	}
	switch cfg.ruleSet {
	case RuleSetV1:
		c.splits = []splitRule{bracketDot, titlePhone}
		c.hyphenName = hyphenatedNameV1
	default:
		c.ruleSet = RuleSetV2
		c.splits = []splitRule{bracketDot, titlePhone, leadingHyphen}
		c.hyphenName = hyphenatedNameV2
	}
	return c
}

// RuleSet returns the rule set in use.
func (c *Corrector) RuleSet() RuleSet {
	return c.ruleSet
}

// Correct rewrites tokens and drops whitespace tokens that carry no line break.
// The input slice is not modified.
func (c *Corrector) Correct(tokens []tokenizer.Token) []tokenizer.Token {
	return lo.Filter(c.Rewrite(tokens), func(t tokenizer.Token, _ int) bool {
		return !t.IsSpace() || t.HasNewline()
	})
}

// Rewrite applies the split and merge rules and keeps every token, whitespace
// included, so the result covers exactly the same bytes as tokens.
func (c *Corrector) Rewrite(tokens []tokenizer.Token) []tokenizer.Token {
	if len(tokens) == 0 {
		return nil
	}

	split := make([]tokenizer.Token, 0, len(tokens))
	for _, tok := range tokens {
		split = c.splitToken(split, tok)
	}
	return c.mergeNames(split)
}

func (c *Corrector) splitToken(dst []tokenizer.Token, tok tokenizer.Token) []tokenizer.Token {
	for _, rule := range c.splits {
		pieces := rule.split(tok.Text)
		if pieces == nil || !validSplit(tok.Text, pieces) {
			continue
		}

		c.logger.Debug("split token",
			"rule", rule.name,
			"token", tok.Text,
			"start", tok.Start,
			"pieces", len(pieces),
		)

		off := tok.Start
		for _, p := range pieces {
			dst = c.splitToken(dst, tokenizer.Token{Text: p, Start: off})
			off += len(p)
		}
		return dst
	}
	return append(dst, tok)
}

// mergeNames joins every run of tokens intersecting a hyphenated name.
func (c *Corrector) mergeNames(tokens []tokenizer.Token) []tokenizer.Token {
	text, ok := rebuild(tokens)
	if !ok {
		c.logger.Debug("skipping name merge on unordered stream", "tokens", len(tokens))
		return tokens
	}
	matches := c.hyphenName.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return tokens
	}

	base := tokens[0].Start
	out := make([]tokenizer.Token, 0, len(tokens))
	i := 0
	for _, m := range matches {
		start, end := base+m[0], base+m[1]
		for i < len(tokens) && tokens[i].End() <= start {
			out = append(out, tokens[i])
			i++
		}

		first := i
		for i < len(tokens) && tokens[i].Start < end {
			i++
		}
		switch i - first {
		case 0:
			continue
		case 1:
			out = append(out, tokens[first])
			continue
		}

		merged := tokenizer.Token{
			Text:  text[tokens[first].Start-base : tokens[i-1].End()-base],
			Start: tokens[first].Start,
		}
		c.logger.Debug("merge tokens",
			"rule", "hyphenated-name",
			"token", merged.Text,
			"start", merged.Start,
			"merged", i-first,
		)
		out = append(out, merged)
	}
	return append(out, tokens[i:]...)
}

// rebuild lays tokens out at their offsets relative to the first token. Gaps
// left by dropped tokens become spaces so no pattern can match across them.
// It fails when tokens overlap or are out of order.
func rebuild(tokens []tokenizer.Token) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}

	var b strings.Builder
	base := tokens[0].Start
	pos := base
	for _, t := range tokens {
		if t.Start < pos {
			return "", false
		}
		if gap := t.Start - pos; gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(t.Text)
		pos = t.End()
	}
	return b.String(), true
}
