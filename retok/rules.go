package retok

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitRule splits one token text into pieces, or returns nil when the token
// does not match.
type splitRule struct {
	name  string
	split func(text string) []string
}

var (
	// Closing citation bracket and period glued to the preceding word: "Dupont].".
	bracketDotPattern = regexp.MustCompile(`^\S+\]\.`)

	// Title with no space before the name ("M.Dupont", "MM.Durand") or phone
	// introducer glued to the number ("tél.0612345678").
	titlePhonePattern = regexp.MustCompile(`^(?:M(?:M|r)?\.[A-Z][\pL\pN_]+|t[ée]l\.[0-9]+$)`)

	// Compound first or last names. v2 only accepts ASCII letters.
	hyphenatedNameV1 = regexp.MustCompile(`[A-Z][\pL\pN_]+-[A-Z][\pL\pN_]+`)
	hyphenatedNameV2 = regexp.MustCompile(`[A-Z][A-Za-z]+-[A-Z][A-Za-z]+`)
)

var (
	bracketDot    = splitRule{name: "bracket-dot", split: splitBracketDot}
	titlePhone    = splitRule{name: "title-phone", split: splitTitlePhone}
	leadingHyphen = splitRule{name: "leading-hyphen", split: splitLeadingHyphen}
)

// splitBracketDot turns "Dupont]." into "Dupont", "]" and ".".
func splitBracketDot(text string) []string {
	if !bracketDotPattern.MatchString(text) {
		return nil
	}
	i := strings.Index(text[1:], "].")
	if i < 0 {
		return nil
	}
	i++
	return []string{text[:i], "]", text[i+1:]}
}

// splitTitlePhone cuts after the first period: "M.Dupont" gives "M." and "Dupont".
func splitTitlePhone(text string) []string {
	if !titlePhonePattern.MatchString(text) {
		return nil
	}
	i := strings.IndexByte(text, '.')
	if i < 0 || i == len(text)-1 {
		return nil
	}
	return []string{text[:i+1], text[i+1:]}
}

// splitLeadingHyphen detaches a dash glued to a capitalised word: "-Dupont".
func splitLeadingHyphen(text string) []string {
	if len(text) < 2 || text[0] != '-' {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(text[1:])
	if !unicode.IsUpper(r) {
		return nil
	}
	return []string{"-", text[1:]}
}

// validSplit reports whether pieces partition text exactly.
func validSplit(text string, pieces []string) bool {
	if len(pieces) < 2 {
		return false
	}
	n := 0
	for _, p := range pieces {
		if p == "" || !strings.HasPrefix(text[n:], p) {
			return false
		}
		n += len(p)
	}
	return n == len(text)
}
