// Package sentence rebuilds sentence boundaries from a corrected token stream.
//
// Boundaries come from token text alone: a terminal punctuation token closes
// the current sentence, a token carrying a line break closes it too, and the
// last token of the document always does.
package sentence

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-juritok/tokenizer"
)

// Sentence is a non-empty run of tokens.
type Sentence struct {
	Tokens []tokenizer.Token
	Start  int // offset of the first token
}

// Len returns the number of tokens.
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Texts returns the token texts in order.
func (s Sentence) Texts() []string {
	return lo.Map(s.Tokens, func(t tokenizer.Token, _ int) string { return t.Text })
}

// End returns the offset just past the last token.
func (s Sentence) End() int {
	if len(s.Tokens) == 0 {
		return s.Start
	}
	return s.Tokens[len(s.Tokens)-1].End()
}

// Text returns the slice of src the sentence covers, inner whitespace included.
func (s Sentence) Text(src string) string {
	if s.Start < 0 || s.End() > len(src) || s.Start > s.End() {
		return ""
	}
	return src[s.Start:s.End()]
}

// IsTerminator reports whether text closes a sentence.
func IsTerminator(text string) bool {
	switch text {
	case "?", ".", "!", ";":
		return true
	}
	return false
}

// Reassembler groups tokens into sentences. It is safe for concurrent use.
type Reassembler struct {
	logger       *slog.Logger
	suppressDiag bool
}

// NewReassembler creates a Reassembler.
func NewReassembler(opts ...Option) *Reassembler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Reassembler{
		logger:       cfg.logger,
		suppressDiag: cfg.suppressEmptyDiagnostics,
	}
}

// Split partitions tokens into sentences in a single forward pass.
func (r *Reassembler) Split(tokens []tokenizer.Token) []Sentence {
	var (
		sentences []Sentence
		staged    []tokenizer.Token
	)

	flush := func() {
		if len(staged) == 0 {
			r.emptyCandidate()
			return
		}
		sentences = append(sentences, Sentence{Tokens: staged, Start: staged[0].Start})
		staged = nil
	}

	last := len(tokens) - 1
	for i, tok := range tokens {
		space := tok.IsSpace()
		switch {
		case space && !tok.HasNewline():
			// Stray blank; the corrector normally drops these.
		case i == last && !space:
			staged = append(staged, tok)
			flush()
		case !space && !IsTerminator(tok.Text):
			staged = append(staged, tok)
		case IsTerminator(tok.Text):
			staged = append(staged, tok)
			flush()
		case tok.HasNewline():
			flush()
		}
	}
	// Trailing blank after the last word
	if len(staged) > 0 {
		flush()
	}

	return lo.Filter(sentences, func(s Sentence, _ int) bool {
		if s.Len() == 0 {
			r.emptyCandidate()
			return false
		}
		return true
	})
}

func (r *Reassembler) emptyCandidate() {
	if r.suppressDiag {
		return
	}
	r.logger.Debug("discarding empty sentence")
}
