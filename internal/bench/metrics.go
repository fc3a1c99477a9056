package bench

import (
	"context"
	"fmt"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// Score derives precision, recall and the weighted score from raw counts.
func Score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Segmenter predicts sentence end offsets for a text.
type Segmenter interface {
	Name() string
	Boundaries(ctx context.Context, text string) ([]int, error)
}

// EvaluateDecision runs seg over one decision and scores it against the gold
// sentences.
func EvaluateDecision(ctx context.Context, seg Segmenter, d *Decision, cfg Config) (Metrics, error) {
	predicted, err := seg.Boundaries(ctx, d.RawText)
	if err != nil {
		return Metrics{}, fmt.Errorf("segmenting %s: %w", d.ID, err)
	}
	return Evaluate(predicted, d.Boundaries(), cfg), nil
}

// EvaluateCorpus scores seg over every decision and aggregates the counts.
func EvaluateCorpus(ctx context.Context, seg Segmenter, decisions []*Decision, cfg Config) (Metrics, error) {
	var tp, fp, fn int
	for _, d := range decisions {
		m, err := EvaluateDecision(ctx, seg, d, cfg)
		if err != nil {
			return Metrics{}, err
		}
		tp += m.TruePositives
		fp += m.FalsePositives
		fn += m.FalseNegatives
	}
	return Score(tp, fp, fn, cfg), nil
}
