package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	juritok "github.com/jamesainslie/go-juritok"
	"github.com/jamesainslie/go-juritok/internal/bench"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// Set by the build with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/decisions", "Directory containing decisions (.txt) and treebank splits (.json)")
		tolerance = flag.Int("tolerance", 3, "Byte tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		punkt     = flag.Bool("punkt", true, "Include the Punkt baseline")
		report    = flag.String("report", "", "Append a JSON report line to this file")
		verbose   = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load corpus
	decisions, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("juritok-bench %s (commit %s, built %s)\n", version, commit, date)
	fmt.Printf("Loaded %d documents from %s\n\n", len(decisions), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	var segmenters []bench.Segmenter
	for _, rs := range []juritok.RuleSet{juritok.RuleSetV2, juritok.RuleSetV1} {
		seg, err := bench.NewJuriSegmenter(juritok.WithLogger(logger), juritok.WithRuleSet(rs))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating tokenizer: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = seg.Close() }()
		segmenters = append(segmenters, seg)
	}
	if *punkt {
		seg, err := bench.NewPunktSegmenter()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading punkt: %v\n", err)
			os.Exit(1)
		}
		segmenters = append(segmenters, seg)
	}

	ctx := context.Background()
	results, err := bench.Compare(ctx, decisions, cfg, segmenters...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during comparison: %v\n", err)
		os.Exit(1)
	}

	printResults(os.Stdout, cfg, results)

	if *report != "" {
		r := bench.NewReport(*corpusDir, len(decisions), cfg, results)
		if err := bench.AppendReport(ctx, *report, r); err != nil {
			fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nRun %s appended to %s\n", r.RunID, *report)
	}
}

func printResults(w io.Writer, cfg bench.Config, results []bench.Result) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Segmenter Comparison (wp=%.1f, wr=%.1f, tolerance=%d)",
		cfg.PrecisionWeight, cfg.RecallWeight, cfg.Tolerance)))

	rows := make([][]string, len(results))
	for i, r := range results {
		m := r.Metrics
		rows[i] = []string{
			r.Segmenter,
			fmt.Sprintf("%.2f", m.Precision),
			fmt.Sprintf("%.2f", m.Recall),
			fmt.Sprintf("%.2f", m.F1),
			fmt.Sprintf("%.2f", m.WeightedScore),
			fmt.Sprintf("%d/%d/%d", m.TruePositives, m.FalsePositives, m.FalseNegatives),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Segmenter", "Prec", "Rec", "F1", "Weighted", "TP/FP/FN").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				// Results are sorted, the first row is the best
				return bestStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(w, t.Render())

	if len(results) > 0 {
		fmt.Fprintf(w, "Best: %s (Weighted: %.2f)\n", results[0].Segmenter, results[0].Metrics.WeightedScore)
	}
}
