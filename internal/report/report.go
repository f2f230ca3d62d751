// Package report renders human-readable prediction reports to a writer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/gradecast/internal/domain/model"
)

const separatorWidth = 60

// RenderPrediction writes the detailed report for a single prediction.
func RenderPrediction(w io.Writer, pred model.Prediction) {
	sep := strings.Repeat("=", separatorWidth)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintln(w, "STUDENT PERFORMANCE PREDICTION REPORT")
	fmt.Fprintln(w, sep)

	fmt.Fprintln(w, "\nStudent Information:")
	fmt.Fprintf(w, "   Name: %s\n", pred.StudentName)
	fmt.Fprintf(w, "   ID: %s\n", pred.StudentID)

	fmt.Fprintln(w, "\nPrediction Results:")
	fmt.Fprintf(w, "   Predicted Performance: %.1f%%\n", pred.Performance)
	fmt.Fprintf(w, "   Confidence Score: %.2f\n", pred.Confidence)

	fmt.Fprintln(w, "\nKey Factors Analysis:")
	for _, factor := range pred.Factors {
		fmt.Fprintf(w, "   - %s\n", factor)
	}

	fmt.Fprintln(w, "\nRecommendations:")
	for _, rec := range pred.Recommendations {
		fmt.Fprintf(w, "   - %s\n", rec)
	}

	if pred.Error != "" {
		fmt.Fprintf(w, "\nNote: %s\n", pred.Error)
	}

	fmt.Fprintf(w, "\n%s\n", sep)
}

// RenderSummary writes the batch summary report.
func RenderSummary(w io.Writer, s model.Summary) {
	sep := strings.Repeat("=", separatorWidth)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintln(w, "BATCH PREDICTION SUMMARY REPORT")
	fmt.Fprintln(w, sep)

	if s.Count == 0 {
		fmt.Fprintln(w, "\nNo results to summarize.")
		return
	}

	fmt.Fprintln(w, "\nPerformance Statistics:")
	fmt.Fprintf(w, "   Run ID: %s\n", s.RunID)
	fmt.Fprintf(w, "   Total Students: %d\n", s.Count)
	fmt.Fprintf(w, "   Average Predicted Performance: %.1f%%\n", s.MeanPerformance)
	fmt.Fprintf(w, "   Highest Predicted Performance: %.1f%%\n", s.MaxPerformance)
	fmt.Fprintf(w, "   Lowest Predicted Performance: %.1f%%\n", s.MinPerformance)
	fmt.Fprintf(w, "   Average Confidence: %.2f\n", s.MeanConfidence)

	fmt.Fprintln(w, "\nPerformance Distribution:")
	fmt.Fprintf(w, "   High Performers (>=85%%): %d students\n", s.HighPerformers)
	fmt.Fprintf(w, "   Medium Performers (70-84%%): %d students\n", s.MediumPerformers)
	fmt.Fprintf(w, "   At-Risk Students (<70%%): %d students\n", s.AtRisk)

	fmt.Fprintln(w, "\nMost Common Recommendations:")
	for _, rc := range s.TopRecommendations {
		fmt.Fprintf(w, "   - %s (%d students)\n", rc.Recommendation, rc.Count)
	}

	fmt.Fprintf(w, "\n%s\n", sep)
}
