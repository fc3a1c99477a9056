package tokenizer

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/analysis"
)

// ErrInvalidSpecialCase indicates a special case entry that can never match a
// whitespace-delimited chunk.
var ErrInvalidSpecialCase = errors.New("tokenizer: invalid special case")

//go:embed data/special_cases.txt
var defaultSpecialCases []byte

//go:embed data/elision_fr.txt
var elisionArticles []byte

// loadSpecialCases builds the special case table: the embedded legal
// abbreviations, then the entries of cfg.SpecialCasesPath, then cfg.SpecialCases.
func loadSpecialCases(cfg Config) (analysis.TokenMap, error) {
	table := analysis.NewTokenMap()
	if err := table.LoadBytes(defaultSpecialCases); err != nil {
		return nil, fmt.Errorf("loading built-in special cases: %w", err)
	}

	if cfg.SpecialCasesPath != "" {
		if err := table.LoadFile(cfg.SpecialCasesPath); err != nil {
			return nil, fmt.Errorf("loading special cases file: %w", err)
		}
	}

	for _, c := range cfg.SpecialCases {
		if c == "" || strings.IndexFunc(c, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSpecialCase, c)
		}
		table.AddToken(c)
	}

	return table, nil
}

// loadElisions builds the lower-cased elided article table.
func loadElisions() (analysis.TokenMap, error) {
	table := analysis.NewTokenMap()
	if err := table.LoadBytes(elisionArticles); err != nil {
		return nil, fmt.Errorf("loading elision articles: %w", err)
	}
	return table, nil
}
