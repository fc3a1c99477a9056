//go:build ignore

// Process UD French GSD CoNLL-U files into the benchmark treebank format.
// Creates JSON files with text and gold-standard sentence end offsets.
// Paragraph breaks ("# newpar") become line breaks in the text.
// Usage: go run ./scripts/process-ud-fr.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const source = "https://github.com/UniversalDependencies/UD_French-GSD"

// Treebank mirrors bench.Treebank.
type Treebank struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Text       string `json:"text"`
	Sentences  int    `json:"sentences"`
	Boundaries []int  `json:"boundaries"` // Byte offsets where sentences end
}

type sentence struct {
	text    string
	newPara bool
}

func main() {
	dir := "testdata/ud-fr"

	var all []sentence
	for _, split := range []string{"train", "dev", "test"} {
		inFile := filepath.Join(dir, fmt.Sprintf("fr_gsd-ud-%s.conllu", split))
		outFile := filepath.Join(dir, fmt.Sprintf("%s.json", split))

		fmt.Printf("Processing %s...\n", split)
		sentences, err := readCoNLLU(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}
		all = append(all, sentences...)

		tb := build("UD-French-GSD-"+split, sentences)
		if err := write(outFile, tb); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}
		fmt.Printf("  -> %s (%d sentences, %d bytes)\n", outFile, tb.Sentences, len(tb.Text))
	}

	if len(all) > 0 {
		tb := build("UD-French-GSD-combined", all)
		outFile := filepath.Join(dir, "combined.json")
		if err := write(outFile, tb); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			os.Exit(1)
		}
		fmt.Printf("  -> %s (%d sentences, %d bytes)\n", outFile, tb.Sentences, len(tb.Text))
	}
}

func readCoNLLU(path string) ([]sentence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		sentences []sentence
		current   sentence
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "# newpar"), strings.HasPrefix(line, "# newdoc"):
			current.newPara = true
		case strings.HasPrefix(line, "# text = "):
			current.text = strings.TrimPrefix(line, "# text = ")
		case line == "" && current.text != "":
			sentences = append(sentences, current)
			current = sentence{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	// Last sentence without a trailing blank line
	if current.text != "" {
		sentences = append(sentences, current)
	}

	return sentences, nil
}

func build(name string, sentences []sentence) *Treebank {
	var text strings.Builder
	var boundaries []int

	for i, s := range sentences {
		if i > 0 {
			if s.newPara {
				text.WriteString("\n")
			} else {
				text.WriteString(" ")
			}
		}
		text.WriteString(s.text)
		boundaries = append(boundaries, text.Len())
	}

	return &Treebank{
		Name:       name,
		Source:     source,
		Text:       text.String(),
		Sentences:  len(sentences),
		Boundaries: boundaries,
	}
}

func write(path string, tb *Treebank) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tb)
}
