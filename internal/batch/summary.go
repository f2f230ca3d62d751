package batch

import (
	"math"
	"sort"

	"github.com/okian/gradecast/internal/domain/model"
)

// Performance distribution bucket boundaries.
const (
	highPerformerThreshold   = 85.0
	mediumPerformerThreshold = 70.0
)

// Summarize aggregates a batch of predictions: count, mean/min/max
// performance, mean confidence, the three-bucket distribution and the topN
// most frequent recommendations. Frequency ties keep first-seen order.
func Summarize(runID string, results []model.Prediction, topN int) model.Summary {
	s := model.Summary{RunID: runID, Count: len(results)}
	if len(results) == 0 {
		return s
	}

	var perfSum, confSum float64
	s.MinPerformance = results[0].Performance
	s.MaxPerformance = results[0].Performance

	recCounts := make(map[string]int)
	var recOrder []string

	for _, res := range results {
		perfSum += res.Performance
		confSum += res.Confidence
		s.MinPerformance = math.Min(s.MinPerformance, res.Performance)
		s.MaxPerformance = math.Max(s.MaxPerformance, res.Performance)

		switch {
		case res.Performance >= highPerformerThreshold:
			s.HighPerformers++
		case res.Performance >= mediumPerformerThreshold:
			s.MediumPerformers++
		default:
			s.AtRisk++
		}

		for _, rec := range res.Recommendations {
			if _, seen := recCounts[rec]; !seen {
				recOrder = append(recOrder, rec)
			}
			recCounts[rec]++
		}
	}

	n := float64(len(results))
	s.MeanPerformance = math.Round(perfSum/n*10) / 10
	s.MeanConfidence = math.Round(confSum/n*100) / 100

	// Stable sort over first-seen order breaks frequency ties by first
	// appearance, matching how the recommendations were produced.
	counts := make([]model.RecommendationCount, 0, len(recOrder))
	for _, rec := range recOrder {
		counts = append(counts, model.RecommendationCount{Recommendation: rec, Count: recCounts[rec]})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	s.TopRecommendations = counts

	return s
}
