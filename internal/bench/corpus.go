// Package bench provides benchmarking utilities for sentence boundary detection
// on French court decisions.
package bench

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Header contains metadata parsed from a decision file header.
type Header struct {
	Source       string
	Jurisdiction string
	Title        string
}

// ParseHeader extracts metadata from decision header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Jurisdiction:"); ok {
			h.Jurisdiction = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := strings.TrimSpace(text[bodyStart:])

	return h, body, nil
}

// Sentence represents a gold sentence with byte offsets.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Abbreviations found in French decisions that do not end sentences.
var abbreviations = regexp.MustCompile(`(?i)(?:^|[\s(\['’])(M|MM|Mme|Mlle|Me|Dr|Pr|art|al|ch|cass|civ|crim|com|soc|bull|cf|etc|préc|ord|req|p|pp)\.$`)

// ParseSentences splits text into gold sentences. A sentence ends at '.', '?'
// or '!' followed by whitespace, or at a line break.
func ParseSentences(text string) []Sentence {
	if text == "" {
		return nil
	}

	var sentences []Sentence
	start := 0

	emit := func(end int) {
		s := strings.TrimSpace(text[start:end])
		if s == "" {
			return
		}
		first := start + strings.Index(text[start:end], s)
		sentences = append(sentences, Sentence{Text: s, Start: first, End: first + len(s)})
	}
	skipSpace := func(i int) int {
		for i+1 < len(text) && isSpace(text[i+1]) {
			i++
		}
		return i
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '\n':
			emit(i)
			i = skipSpace(i)
			start = i + 1
		case ch == '.' || ch == '?' || ch == '!':
			// Only end of text or whitespace closes a sentence
			if i != len(text)-1 && !isSpace(text[i+1]) {
				continue
			}
			if ch == '.' && abbreviations.MatchString(text[start:i+1]) {
				continue
			}
			emit(i + 1)
			i = skipSpace(i)
			start = i + 1
		}
	}

	// Remaining text without terminal punctuation
	if start < len(text) {
		emit(len(text))
	}

	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// Decision represents a loaded court decision with gold sentences.
type Decision struct {
	ID           string // filename without extension
	Source       string
	Jurisdiction string
	Title        string
	RawText      string // body text
	Sentences    []Sentence
}

// Boundaries returns the gold sentence end offsets.
func (d *Decision) Boundaries() []int {
	out := make([]int, len(d.Sentences))
	for i, s := range d.Sentences {
		out[i] = s.End
	}
	return out
}

// LoadDecision loads and parses an annotated decision file.
func LoadDecision(path string) (*Decision, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	return &Decision{
		ID:           fileID(path),
		Source:       header.Source,
		Jurisdiction: header.Jurisdiction,
		Title:        header.Title,
		RawText:      body,
		Sentences:    ParseSentences(body),
	}, nil
}

// Treebank is a processed treebank split: plain text plus the gold offsets
// where sentences end.
type Treebank struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Text       string `json:"text"`
	Sentences  int    `json:"sentences"`
	Boundaries []int  `json:"boundaries"`
}

// LoadTreebank loads a processed treebank JSON file as a Decision.
func LoadTreebank(path string) (*Decision, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var tb Treebank
	if err := json.Unmarshal(data, &tb); err != nil {
		return nil, fmt.Errorf("decode treebank: %w", err)
	}

	d := &Decision{
		ID:      fileID(path),
		Source:  tb.Source,
		Title:   tb.Name,
		RawText: tb.Text,
	}

	prev := 0
	for _, end := range tb.Boundaries {
		if end < prev || end > len(tb.Text) {
			return nil, fmt.Errorf("boundary %d out of range", end)
		}
		s := strings.TrimSpace(tb.Text[prev:end])
		if s != "" {
			start := prev + strings.Index(tb.Text[prev:end], s)
			d.Sentences = append(d.Sentences, Sentence{Text: s, Start: start, End: start + len(s)})
		}
		prev = end
	}

	return d, nil
}

// LoadCorpus loads all .txt decisions and .json treebank files from a directory.
func LoadCorpus(dir string) ([]*Decision, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var decisions []*Decision
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var load func(string) (*Decision, error)
		switch filepath.Ext(entry.Name()) {
		case ".txt":
			load = LoadDecision
		case ".json":
			load = LoadTreebank
		default:
			continue
		}

		d, err := load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		decisions = append(decisions, d)
	}

	return decisions, nil
}

func fileID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
