package bench

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	juritok "github.com/jamesainslie/go-juritok"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 2,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
			wantFN:    0,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFP:    0,
			wantFN:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Tolerance: tt.tolerance}
			got := Evaluate(tt.predicted, tt.truth, cfg)

			if got.TruePositives != tt.wantTP {
				t.Errorf("TruePositives = %d, want %d", got.TruePositives, tt.wantTP)
			}
			if got.FalsePositives != tt.wantFP {
				t.Errorf("FalsePositives = %d, want %d", got.FalsePositives, tt.wantFP)
			}
			if got.FalseNegatives != tt.wantFN {
				t.Errorf("FalseNegatives = %d, want %d", got.FalseNegatives, tt.wantFN)
			}
		})
	}
}

func TestScore(t *testing.T) {
	m := Score(3, 1, 0, Config{PrecisionWeight: 1, RecallWeight: 3})

	if m.Precision != 0.75 {
		t.Errorf("Precision = %v, want 0.75", m.Precision)
	}
	if m.Recall != 1 {
		t.Errorf("Recall = %v, want 1", m.Recall)
	}
	if want := (0.75 + 3) / 4; m.WeightedScore != want {
		t.Errorf("WeightedScore = %v, want %v", m.WeightedScore, want)
	}

	if zero := Score(0, 0, 0, DefaultConfig()); zero.F1 != 0 {
		t.Errorf("F1 = %v, want 0", zero.F1)
	}
}

type fixedSegmenter struct {
	name       string
	boundaries []int
	err        error
}

func (s fixedSegmenter) Name() string { return s.name }

func (s fixedSegmenter) Boundaries(context.Context, string) ([]int, error) {
	return s.boundaries, s.err
}

func testDecision() *Decision {
	text := "Le chat dort. Il pleut."
	return &Decision{
		ID:        "test",
		RawText:   text,
		Sentences: ParseSentences(text),
	}
}

func TestEvaluateDecision(t *testing.T) {
	seg, err := NewJuriSegmenter(juritok.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), juritok.WithPoolSize(1))
	if err != nil {
		t.Fatalf("NewJuriSegmenter() error = %v", err)
	}
	defer func() { _ = seg.Close() }()

	cfg := DefaultConfig()
	cfg.Tolerance = 0
	metrics, err := EvaluateDecision(context.Background(), seg, testDecision(), cfg)
	if err != nil {
		t.Fatalf("EvaluateDecision() error = %v", err)
	}

	if metrics.F1 != 1 {
		t.Errorf("F1 = %v, want 1 (%+v)", metrics.F1, metrics)
	}
}

func TestEvaluateDecision_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := EvaluateDecision(context.Background(), fixedSegmenter{err: boom}, testDecision(), DefaultConfig())
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter() error = %v", err)
	}
	if got := seg.Name(); got != "punkt-en" {
		t.Errorf("Name() = %q, want %q", got, "punkt-en")
	}

	metrics, err := EvaluateDecision(context.Background(), seg, testDecision(), DefaultConfig())
	if err != nil {
		t.Fatalf("EvaluateDecision() error = %v", err)
	}

	// Should get reasonable precision on simple sentences
	if metrics.Precision < 0.5 {
		t.Errorf("Precision = %v, want >= 0.5", metrics.Precision)
	}
}

func TestPunktSegmenter_Cancelled(t *testing.T) {
	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := seg.Boundaries(ctx, "Bonjour."); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	decisions := []*Decision{testDecision(), testDecision()}
	cfg := DefaultConfig()

	results, err := Compare(context.Background(), decisions, cfg,
		fixedSegmenter{name: "half", boundaries: []int{23}},
		fixedSegmenter{name: "perfect", boundaries: []int{13, 23}},
		fixedSegmenter{name: "none"},
	)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	order := []string{"perfect", "half", "none"}
	for i, name := range order {
		if results[i].Segmenter != name {
			t.Errorf("results[%d] = %s, want %s", i, results[i].Segmenter, name)
		}
	}
	if results[0].Metrics.TruePositives != 4 {
		t.Errorf("TruePositives = %d, want 4", results[0].Metrics.TruePositives)
	}
}

func TestJuriSegmenter_Name(t *testing.T) {
	seg, err := NewJuriSegmenter(
		juritok.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		juritok.WithPoolSize(1),
		juritok.WithRuleSet(juritok.RuleSetV1),
	)
	if err != nil {
		t.Fatalf("NewJuriSegmenter() error = %v", err)
	}
	defer func() { _ = seg.Close() }()

	if got, want := seg.Name(), "JuriTokenizer_using_frtok_v.1.3.0 (v1)"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
