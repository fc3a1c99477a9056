package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Punctuation detached from the front of a chunk. The ASCII hyphen is left
// alone: a dash glued to a name is handled by the boundary rules.
var prefixRunes = map[rune]bool{
	'(': true, '[': true, '{': true,
	'«': true, '‹': true, '"': true, '“': true, '„': true, '‘': true, '\'': true,
	'§': true, '—': true, '–': true, '¿': true, '¡': true,
}

// Punctuation detached from the end of a chunk.
var suffixRunes = map[rune]bool{
	'.': true, ',': true, ';': true, ':': true, '!': true, '?': true, '…': true,
	')': true, ']': true, '}': true,
	'»': true, '›': true, '"': true, '”': true, '’': true, '\'': true, '%': true,
}

// isDotRun reports whether chunk is an ellipsis on its own: "…" or two or
// more periods.
func isDotRun(chunk string) bool {
	if chunk == "…" {
		return true
	}
	return len(chunk) >= 2 && strings.Trim(chunk, ".") == ""
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func prefixLen(chunk string) int {
	r, size := utf8.DecodeRuneInString(chunk)
	if size < len(chunk) && prefixRunes[r] {
		return size
	}
	return 0
}

func suffixLen(chunk string) int {
	if dots := len(chunk) - len(strings.TrimRight(chunk, ".")); dots >= 2 && dots < len(chunk) {
		return dots
	}
	r, size := utf8.DecodeLastRuneInString(chunk)
	if size < len(chunk) && suffixRunes[r] {
		return size
	}
	return 0
}

// isElided reports whether chunk is a bare elided article such as "d'" or "qu’".
func (t *Tokenizer) isElided(chunk string) bool {
	r, size := utf8.DecodeLastRuneInString(chunk)
	if !isApostrophe(r) || size == len(chunk) {
		return false
	}
	return t.elisions[strings.ToLower(chunk[:len(chunk)-size])]
}

// splitChunk tokenizes a whitespace-free chunk starting at byte offset off.
// Prefixes and suffixes are peeled off one at a time, and the special case
// table is consulted again after every peel.
func (t *Tokenizer) splitChunk(dst []Token, chunk string, off int) []Token {
	suffixes := t.suffixes[:0]
	for chunk != "" {
		if t.specialCases[chunk] || t.isElided(chunk) || isDotRun(chunk) {
			dst = append(dst, Token{Text: chunk, Start: off})
			break
		}
		if n := prefixLen(chunk); n > 0 {
			dst = append(dst, Token{Text: chunk[:n], Start: off})
			chunk, off = chunk[n:], off+n
			continue
		}
		if n := suffixLen(chunk); n > 0 {
			cut := len(chunk) - n
			suffixes = append(suffixes, Token{Text: chunk[cut:], Start: off + cut})
			chunk = chunk[:cut]
			continue
		}
		dst = t.splitInfixes(dst, chunk, off)
		break
	}
	for i := len(suffixes) - 1; i >= 0; i-- {
		dst = append(dst, suffixes[i])
	}
	t.suffixes = suffixes
	return dst
}

// splitInfixes cuts an elided article off the front of chunk ("d'Amaury") and
// splits on hyphens sitting between two letters ("Jean-Pierre").
func (t *Tokenizer) splitInfixes(dst []Token, chunk string, off int) []Token {
	segs := segments(chunk)
	start := 0

	for i, s := range segs {
		if !isApostrophe(s.r) {
			continue
		}
		if i > 0 && i < len(segs)-1 && t.elisions[strings.ToLower(chunk[:s.start])] {
			dst = append(dst, Token{Text: chunk[:s.end], Start: off})
			start = s.end
		}
		break
	}

	for i, s := range segs {
		if s.r != '-' || i == 0 || i == len(segs)-1 {
			continue
		}
		prev, next := segs[i-1], segs[i+1]
		if prev.start < start || !prev.isLetter() || !next.isLetter() {
			continue
		}
		dst = append(dst,
			Token{Text: chunk[start:s.start], Start: off + start},
			Token{Text: chunk[s.start:s.end], Start: off + s.start},
		)
		start = s.end
	}

	if start < len(chunk) {
		dst = append(dst, Token{Text: chunk[start:], Start: off + start})
	}
	return dst
}
