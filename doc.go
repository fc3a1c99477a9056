// Package juritok tokenizes French court decisions.
//
// A rule-based French tokenizer produces a first token stream, a set of
// boundary rules repairs the splits that go wrong on legal prose ("M.Dupont",
// "Dupont].", "Jean-Pierre"), and sentences are rebuilt from punctuation and
// line breaks.
//
// # Quick Start
//
//	tok, err := juritok.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tok.Close()
//
//	sentences, err := tok.TokenizedSentences(ctx, "M. Dupont a saisi la cour.\nCh. sociale")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range sentences {
//	    fmt.Println(s.Start, s.Texts())
//	}
//
// # Thread Safety
//
// Tokenizer is safe for concurrent use. It manages an internal pool of base
// tokenizers, configurable via WithPoolSize.
//
// # Rule Sets
//
// Two versions of the boundary rules exist. RuleSetV2, the default, splits a
// dash glued to a capitalised word and only merges hyphenated names made of
// ASCII letters. RuleSetV1 is kept for comparison, see WithRuleSet.
package juritok
