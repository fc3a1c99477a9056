package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// segment is a run of bytes that must never be split: a starter rune followed
// by its combining marks, so a decomposed "é" (e + U+0301) stays whole.
type segment struct {
	start int
	end   int
	r     rune // first rune of the segment
}

// segments cuts s at canonical normalisation boundaries.
func segments(s string) []segment {
	if s == "" {
		return nil
	}

	out := make([]segment, 0, len(s))
	for i := 0; i < len(s); {
		n := norm.NFC.NextBoundaryInString(s[i:], true)
		if n <= 0 {
			n = len(s) - i
		}
		r, _ := utf8.DecodeRuneInString(s[i:])
		out = append(out, segment{start: i, end: i + n, r: r})
		i += n
	}
	return out
}

func (s segment) isSpace() bool {
	return unicode.IsSpace(s.r)
}

func (s segment) isLetter() bool {
	return unicode.IsLetter(s.r)
}
