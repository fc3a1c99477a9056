package bench

import (
	"context"
	"sort"
)

// Result holds metrics for one segmenter.
type Result struct {
	Segmenter string
	Metrics   Metrics
}

// Compare evaluates each segmenter over the corpus and returns results sorted
// by weighted score, best first.
func Compare(ctx context.Context, decisions []*Decision, cfg Config, segmenters ...Segmenter) ([]Result, error) {
	results := make([]Result, 0, len(segmenters))

	for _, seg := range segmenters {
		m, err := EvaluateCorpus(ctx, seg, decisions, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			Segmenter: seg.Name(),
			Metrics:   m,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
