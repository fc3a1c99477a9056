package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	juritok "github.com/jamesainslie/go-juritok"
	"github.com/jamesainslie/go-juritok/internal/export"
	"github.com/jamesainslie/go-juritok/retok"
	"github.com/jamesainslie/go-juritok/tokenizer"
)

// Set by the build with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	mode := flag.String("mode", "sentences", "Mode: tokens or sentences")
	format := flag.String("format", "text", "Output format: text, json or proto")
	rules := flag.String("rules", "v2", "Boundary rule set: v1 or v2")
	specialCases := flag.String("special-cases", "", "File with extra special cases, one per line")
	verbose := flag.Bool("v", false, "Debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: juritok-cli [OPTIONS] [TEXT...]")
		fmt.Fprintln(os.Stderr, "Reads TEXT, or stdin when no TEXT is given.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("juritok-cli %s (commit %s, built %s), base tokenizer %s\n", version, commit, date, tokenizer.Name())
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ruleSet, err := retok.ParseRuleSet(*rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	outFormat, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	opts := []juritok.Option{
		juritok.WithLogger(logger),
		juritok.WithRuleSet(ruleSet),
		juritok.WithPoolSize(1),
		juritok.WithSuppressEmptySentenceDiagnostics(!*verbose),
	}
	if *specialCases != "" {
		opts = append(opts, juritok.WithSpecialCasesFile(*specialCases))
	}

	tok, err := juritok.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tokenizer: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = tok.Close() }() // Cleanup error ignored in CLI

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "tokens":
		tokens, err := tok.Tokens(ctx, text)
		if err == nil {
			err = export.WriteTokens(os.Stdout, outFormat, tokens)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "sentences":
		sentences, err := tok.TokenizedSentences(ctx, text)
		if err == nil {
			err = export.Write(os.Stdout, outFormat, sentences)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

// readInput joins args, or reads stdin when there are none. An interactive
// stdin is refused rather than waited on.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no text provided")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
