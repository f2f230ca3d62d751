package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderPrediction(t *testing.T) {
	Convey("Given a single prediction report", t, func() {
		pred := model.Prediction{
			StudentID:       "STU0001",
			StudentName:     "Student_1",
			Performance:     89.2,
			Confidence:      0.9,
			Factors:         []string{"Excellent attendance rate supports strong performance"},
			Recommendations: []string{"Continue current study habits - excellent trajectory"},
			Timestamp:       time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		}

		Convey("When rendering a successful prediction", func() {
			var buf bytes.Buffer
			report.RenderPrediction(&buf, pred)
			out := buf.String()

			Convey("Then it should contain the header and all sections", func() {
				So(out, ShouldContainSubstring, "STUDENT PERFORMANCE PREDICTION REPORT")
				So(out, ShouldContainSubstring, "Name: Student_1")
				So(out, ShouldContainSubstring, "ID: STU0001")
				So(out, ShouldContainSubstring, "Predicted Performance: 89.2%")
				So(out, ShouldContainSubstring, "Confidence Score: 0.90")
				So(out, ShouldContainSubstring, "- Excellent attendance rate supports strong performance")
				So(out, ShouldContainSubstring, "- Continue current study habits - excellent trajectory")
				So(out, ShouldNotContainSubstring, "Note:")
			})
		})

		Convey("When rendering a prediction that fell back to the local formula", func() {
			pred.Error = "remote call: connection refused"
			var buf bytes.Buffer
			report.RenderPrediction(&buf, pred)

			Convey("Then the error note should appear", func() {
				So(buf.String(), ShouldContainSubstring, "Note: remote call: connection refused")
			})
		})
	})
}

func TestRenderSummary(t *testing.T) {
	Convey("Given a batch summary report", t, func() {
		Convey("When rendering a populated summary", func() {
			s := model.Summary{
				RunID:            "run-1",
				Count:            4,
				MeanPerformance:  77.5,
				MinPerformance:   60,
				MaxPerformance:   90,
				MeanConfidence:   0.8,
				HighPerformers:   1,
				MediumPerformers: 2,
				AtRisk:           1,
				TopRecommendations: []model.RecommendationCount{
					{Recommendation: "Consider additional tutoring or academic support", Count: 3},
				},
			}
			var buf bytes.Buffer
			report.RenderSummary(&buf, s)
			out := buf.String()

			Convey("Then it should contain statistics and distribution", func() {
				So(out, ShouldContainSubstring, "BATCH PREDICTION SUMMARY REPORT")
				So(out, ShouldContainSubstring, "Run ID: run-1")
				So(out, ShouldContainSubstring, "Total Students: 4")
				So(out, ShouldContainSubstring, "Average Predicted Performance: 77.5%")
				So(out, ShouldContainSubstring, "Highest Predicted Performance: 90.0%")
				So(out, ShouldContainSubstring, "Lowest Predicted Performance: 60.0%")
				So(out, ShouldContainSubstring, "Average Confidence: 0.80")
				So(out, ShouldContainSubstring, "High Performers (>=85%): 1 students")
				So(out, ShouldContainSubstring, "Medium Performers (70-84%): 2 students")
				So(out, ShouldContainSubstring, "At-Risk Students (<70%): 1 students")
				So(out, ShouldContainSubstring, "- Consider additional tutoring or academic support (3 students)")
			})

			Convey("Then separators should frame the report", func() {
				So(strings.Count(out, strings.Repeat("=", 60)), ShouldEqual, 3)
			})
		})

		Convey("When rendering an empty summary", func() {
			var buf bytes.Buffer
			report.RenderSummary(&buf, model.Summary{RunID: "run-2"})

			Convey("Then it should state there is nothing to summarize", func() {
				So(buf.String(), ShouldContainSubstring, "No results to summarize.")
				So(buf.String(), ShouldNotContainSubstring, "Performance Statistics")
			})
		})
	})
}
