package juritok

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-juritok/pool"
	"github.com/jamesainslie/go-juritok/retok"
	"github.com/jamesainslie/go-juritok/sentence"
	"github.com/jamesainslie/go-juritok/tokenizer"
)

// Tokenizer tokenizes French court decisions into corrected tokens and
// sentences. It is safe for concurrent use.
type Tokenizer struct {
	pool        *pool.Pool
	corrector   *retok.Corrector
	reassembler *sentence.Reassembler
	logger      *slog.Logger
}

// New creates a Tokenizer.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Check special cases file exists
	if cfg.specialCasesPath != "" {
		if _, err := os.Stat(cfg.specialCasesPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrSpecialCasesNotFound, cfg.specialCasesPath)
			}
			return nil, fmt.Errorf("checking special cases file: %w", err)
		}
	}

	p, err := pool.New(tokenizer.Config{
		SpecialCases:     cfg.specialCases,
		SpecialCasesPath: cfg.specialCasesPath,
	}, cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	t := &Tokenizer{
		pool:      p,
		corrector: retok.New(retok.WithRuleSet(cfg.ruleSet), retok.WithLogger(cfg.logger)),
		reassembler: sentence.NewReassembler(
			sentence.WithLogger(cfg.logger),
			sentence.WithSuppressEmptySentenceDiagnostics(cfg.suppressEmpty),
		),
		logger: cfg.logger,
	}

	t.logger.Info("tokenizer ready",
		"name", t.Name(),
		"rules", t.corrector.RuleSet(),
		"pool_size", p.Size(),
	)
	return t, nil
}

// Name identifies the tokenizer and the version of its base tokenization
// rules, for provenance records.
func (t *Tokenizer) Name() string {
	return "JuriTokenizer_using_" + tokenizer.Name()
}

// RuleSet returns the boundary rule set in use.
func (t *Tokenizer) RuleSet() RuleSet {
	return t.corrector.RuleSet()
}

// Tokens returns the corrected tokens of text with their offsets. Whitespace
// tokens are dropped unless they contain a line break.
func (t *Tokenizer) Tokens(ctx context.Context, text string) ([]tokenizer.Token, error) {
	if text == "" {
		return nil, nil
	}

	base, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	raw := base.Tokenize(text)
	t.pool.Release(base)

	return t.corrector.Correct(raw), nil
}

// Tokenize returns the corrected token texts of text in document order.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	tokens, err := t.Tokens(ctx, text)
	if err != nil {
		return nil, err
	}
	return lo.Map(tokens, func(tok tokenizer.Token, _ int) string { return tok.Text }), nil
}

// TokenizedSentences splits text into sentences of corrected tokens.
// Empty and whitespace-only texts give no sentences.
func (t *Tokenizer) TokenizedSentences(ctx context.Context, text string) ([]sentence.Sentence, error) {
	tokens, err := t.Tokens(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	return t.reassembler.Split(tokens), nil
}

// SentencesBatch runs TokenizedSentences over texts concurrently, at most
// one document per pooled tokenizer at a time. Results are in input order.
func (t *Tokenizer) SentencesBatch(ctx context.Context, texts []string) ([][]sentence.Sentence, error) {
	results := make([][]sentence.Sentence, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.pool.Size())
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			sentences, err := t.TokenizedSentences(ctx, text)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = sentences
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases all resources.
func (t *Tokenizer) Close() error {
	if t.pool != nil {
		return t.pool.Close()
	}
	return nil
}
