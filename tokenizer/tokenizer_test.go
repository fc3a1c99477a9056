package tokenizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestTokenizer(t *testing.T, cfg Config) *Tokenizer {
	t.Helper()
	tok, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		if err := tok.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return tok
}

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// checkCoverage verifies every token sits at its offset and that the tokens
// rebuild the input.
func checkCoverage(t *testing.T, input string, tokens []Token) {
	t.Helper()
	var b strings.Builder
	for i, tok := range tokens {
		if tok.End() > len(input) || input[tok.Start:tok.End()] != tok.Text {
			t.Errorf("token %d (%q) not found at offset %d", i, tok.Text, tok.Start)
		}
		b.WriteString(tok.Text)
	}
	if b.String() != input {
		t.Errorf("tokens rebuild %q, want %q", b.String(), input)
	}
}

func TestTokenizer_Tokenize(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"glued title survives", "M. Fouret et M.Barrière.", []string{"M.", " ", "Fouret", " ", "et", " ", "M.Barrière", "."}},
		{"brackets", "[M. Dupont].", []string{"[", "M.", " ", "Dupont", "]", "."}},
		{"elision", "d'Amaury.", []string{"d'", "Amaury", "."}},
		{"typographic elision", "qu’il", []string{"qu’", "il"}},
		{"bare elided article", "l' avocat", []string{"l'", " ", "avocat"}},
		{"hyphen between letters", "Jean-Pierre", []string{"Jean", "-", "Pierre"}},
		{"phone number stays glued", "tél.0612345678", []string{"tél.0612345678"}},
		{"leading hyphen stays glued", "-Dupont", []string{"-Dupont"}},
		{"newline run", "Bonjour\n\n  toi", []string{"Bonjour", "\n\n  ", "toi"}},
		{"special case after prefix", "(art. 5)", []string{"(", "art.", " ", "5", ")"}},
		{"ellipsis", "Attendu que...", []string{"Attendu", " ", "que", "..."}},
		{"standalone ellipsis", "Mme X ... c/", []string{"Mme", " ", "X", " ", "...", " ", "c/"}},
		{"standalone unicode ellipsis", "X … Y", []string{"X", " ", "…", " ", "Y"}},
		{"double period", "fin..", []string{"fin", ".."}},
		{"month abbreviation", "12 janv. 2020", []string{"12", " ", "janv.", " ", "2020"}},
		{"guillemets", "«Paris»", []string{"«", "Paris", "»"}},
		{"comma", "mignon, voir", []string{"mignon", ",", " ", "voir"}},
		{"decimal number", "1.000,50 euros", []string{"1.000,50", " ", "euros"}},
		{"decomposed accents", "re\u0301cre\u0301", []string{"re\u0301cre\u0301"}},
		{"lone punctuation", "!", []string{"!"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.input)
			checkCoverage(t, tc.input, got)

			gotTexts := texts(got)
			if len(gotTexts) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tc.input, gotTexts, tc.want)
			}
			for i := range tc.want {
				if gotTexts[i] != tc.want[i] {
					t.Errorf("token %d = %q, want %q", i, gotTexts[i], tc.want[i])
				}
			}
		})
	}
}

func TestTokenizer_Tokenize_Empty(t *testing.T) {
	tok := newTestTokenizer(t, Config{})
	if got := tok.Tokenize(""); got != nil {
		t.Errorf("expected nil for empty text, got %q", texts(got))
	}
}

func TestTokenizer_Tokenize_ResultNotAliased(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	first := tok.Tokenize("Cour de cassation")
	_ = tok.Tokenize("Chambre sociale")

	if first[0].Text != "Cour" {
		t.Errorf("first result was overwritten: %q", texts(first))
	}
}

func TestTokenizer_Coverage(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	inputs := []string{
		"LA COUR DE CASSATION, CHAMBRE CIVILE, a rendu l'arrêt suivant :",
		"Vu l'article L. 1234-5 du code du travail ;",
		"Attendu, selon l'arrêt attaqué (Paris, 12 mars 2019), que M.Dupont...",
		"  \t\n",
		"Mme X... c/ société Y [J.-C. Martin].",
		"tél.0612345678 — fax : 01 23 45 67 89",
	}
	for _, input := range inputs {
		checkCoverage(t, input, tok.Tokenize(input))
	}
}

func TestToken_Predicates(t *testing.T) {
	tests := []struct {
		tok     Token
		space   bool
		newline bool
	}{
		{Token{Text: " "}, true, false},
		{Token{Text: "\n  "}, true, true},
		{Token{Text: "mot"}, false, false},
		{Token{Text: ""}, false, false},
	}
	for _, tc := range tests {
		if got := tc.tok.IsSpace(); got != tc.space {
			t.Errorf("%q.IsSpace() = %v, want %v", tc.tok.Text, got, tc.space)
		}
		if got := tc.tok.HasNewline(); got != tc.newline {
			t.Errorf("%q.HasNewline() = %v, want %v", tc.tok.Text, got, tc.newline)
		}
	}

	if end := (Token{Text: "arrêt", Start: 4}).End(); end != 10 {
		t.Errorf("End() = %d, want 10", end)
	}
}

func TestNew_CustomSpecialCases(t *testing.T) {
	tok := newTestTokenizer(t, Config{SpecialCases: []string{"Sté."}})

	if !tok.IsSpecialCase("Sté.") {
		t.Fatal("expected custom special case to be registered")
	}
	got := texts(tok.Tokenize("la Sté. X"))
	want := []string{"la", " ", "Sté.", " ", "X"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNew_SpecialCasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	content := "# extra abbreviations\nCE.\nCJUE.  # court of justice\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tok := newTestTokenizer(t, Config{SpecialCasesPath: path})
	for _, c := range []string{"CE.", "CJUE.", "Ch."} {
		if !tok.IsSpecialCase(c) {
			t.Errorf("expected %q to be a special case", c)
		}
	}
}

func TestNew_SpecialCasesFileNotFound(t *testing.T) {
	_, err := New(Config{SpecialCasesPath: "../testdata/nonexistent.txt"})
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got: %v", err)
	}
}

func TestNew_InvalidSpecialCase(t *testing.T) {
	for _, c := range []string{"", "c. cass."} {
		_, err := New(Config{SpecialCases: []string{c}})
		if !errors.Is(err, ErrInvalidSpecialCase) {
			t.Errorf("special case %q: expected ErrInvalidSpecialCase, got %v", c, err)
		}
	}
}

func TestTokenizer_SpecialCasesSorted(t *testing.T) {
	tok := newTestTokenizer(t, Config{})
	cases := tok.SpecialCases()
	if len(cases) == 0 {
		t.Fatal("expected built-in special cases")
	}
	for i := 1; i < len(cases); i++ {
		if cases[i-1] >= cases[i] {
			t.Fatalf("special cases not sorted at %d: %q >= %q", i, cases[i-1], cases[i])
		}
	}
}

func TestSegments_KeepCombiningMarks(t *testing.T) {
	segs := segments("e\u0301t")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].end != 3 || !segs[0].isLetter() {
		t.Errorf("first segment = %+v, want letter ending at 3", segs[0])
	}
}

func TestName(t *testing.T) {
	if got, want := Name(), "frtok_v."+Version; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
