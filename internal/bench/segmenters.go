package bench

import (
	"context"
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"

	juritok "github.com/jamesainslie/go-juritok"
)

// JuriSegmenter scores the juritok sentence reassembler.
type JuriSegmenter struct {
	tok *juritok.Tokenizer
}

// NewJuriSegmenter creates a segmenter backed by a juritok.Tokenizer.
func NewJuriSegmenter(opts ...juritok.Option) (*JuriSegmenter, error) {
	tok, err := juritok.New(opts...)
	if err != nil {
		return nil, err
	}
	return &JuriSegmenter{tok: tok}, nil
}

// Name returns the tokenizer name and rule set.
func (s *JuriSegmenter) Name() string {
	return fmt.Sprintf("%s (%s)", s.tok.Name(), s.tok.RuleSet())
}

// Boundaries returns the end offset of each sentence.
func (s *JuriSegmenter) Boundaries(ctx context.Context, text string) ([]int, error) {
	sents, err := s.tok.TokenizedSentences(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(sents))
	for i, sent := range sents {
		out[i] = sent.End()
	}
	return out, nil
}

// Close releases the underlying tokenizer.
func (s *JuriSegmenter) Close() error {
	return s.tok.Close()
}

// PunktSegmenter is an unsupervised Punkt baseline. The sentences module only
// bundles English parameters, so it runs with those.
type PunktSegmenter struct {
	tok *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the bundled English Punkt parameters.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	b, err := sentencesdata.Asset("data/english.json")
	if err != nil {
		return nil, fmt.Errorf("load english punkt data: %w", err)
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, fmt.Errorf("parse english punkt data: %w", err)
	}
	return &PunktSegmenter{tok: sentences.NewSentenceTokenizer(training)}, nil
}

// Name returns "punkt-en".
func (s *PunktSegmenter) Name() string {
	return "punkt-en"
}

// Boundaries returns the end offset of each sentence Punkt finds.
func (s *PunktSegmenter) Boundaries(ctx context.Context, text string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []int
	cursor := 0
	for _, sent := range s.tok.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		idx := strings.Index(text[cursor:], trimmed)
		if idx < 0 {
			continue
		}
		cursor += idx + len(trimmed)
		out = append(out, cursor)
	}
	return out, nil
}
