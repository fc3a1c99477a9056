// Package tokenizer implements the rule-based French base tokenizer that the
// boundary rules run on top of.
//
// Every byte of the input ends up in exactly one token: whitespace runs are
// emitted as tokens of their own, so concatenating the token texts gives the
// input back.
package tokenizer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/blevesearch/bleve/analysis"
)

// Version identifies the tokenization rules. It changes whenever the output of
// Tokenize may change for some input.
const Version = "1.3.0"

// Token is a piece of text with its position in the original text.
type Token struct {
	Text  string
	Start int // byte offset in original text
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Start + len(t.Text)
}

// IsSpace reports whether the token is made of whitespace only.
func (t Token) IsSpace() bool {
	return t.Text != "" && strings.TrimSpace(t.Text) == ""
}

// HasNewline reports whether the token contains a line break.
func (t Token) HasNewline() bool {
	return strings.Contains(t.Text, "\n")
}

// Config holds base tokenizer settings.
type Config struct {
	// SpecialCases are literals that are never split, added to the built-in
	// table of legal abbreviations.
	SpecialCases []string
	// SpecialCasesPath is an optional file with one special case per line.
	// Text after '#' is a comment.
	SpecialCasesPath string
}

// Tokenizer splits French text into tokens.
//
// A Tokenizer reuses internal buffers between calls and is not safe for
// concurrent use.
type Tokenizer struct {
	specialCases analysis.TokenMap
	elisions     analysis.TokenMap

	buf      []Token
	suffixes []Token
}

// Name identifies the base tokenizer and its rule version.
func Name() string {
	return fmt.Sprintf("frtok_v.%s", Version)
}

// New builds a tokenizer from cfg.
func New(cfg Config) (*Tokenizer, error) {
	specialCases, err := loadSpecialCases(cfg)
	if err != nil {
		return nil, err
	}
	elisions, err := loadElisions()
	if err != nil {
		return nil, err
	}

	return &Tokenizer{
		specialCases: specialCases,
		elisions:     elisions,
	}, nil
}

// Tokenize splits text into contiguous, non-overlapping tokens.
func (t *Tokenizer) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	t.buf = t.buf[:0]
	segs := segments(text)
	for i := 0; i < len(segs); {
		space := segs[i].isSpace()
		j := i + 1
		for j < len(segs) && segs[j].isSpace() == space {
			j++
		}

		start, end := segs[i].start, segs[j-1].end
		if space {
			t.buf = append(t.buf, Token{Text: text[start:end], Start: start})
		} else {
			t.buf = t.splitChunk(t.buf, text[start:end], start)
		}
		i = j
	}

	return slices.Clone(t.buf)
}

// IsSpecialCase reports whether s is kept whole by the tokenizer.
func (t *Tokenizer) IsSpecialCase(s string) bool {
	return t.specialCases[s]
}

// SpecialCases returns the special case table, sorted.
func (t *Tokenizer) SpecialCases() []string {
	keys := make([]string, 0, len(t.specialCases))
	for k := range t.specialCases {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Close releases tokenizer resources.
func (t *Tokenizer) Close() error {
	t.buf = nil
	t.suffixes = nil
	return nil
}
