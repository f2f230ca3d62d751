package scoring_test

import (
	"math/rand"
	"testing"

	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHeuristicScorer_Score(t *testing.T) {
	Convey("Given a deterministic scorer", t, func() {
		scorer := scoring.NewHeuristicScorer()

		Convey("When scoring a strong student", func() {
			rec := model.StudentRecord{
				StudentID:           "STU0001",
				AttendanceRate:      0.95,
				PreviousGPA:         3.8,
				StudyHoursPerWeek:   22,
				CurrentAverageGrade: 90,
			}

			Convey("Then the score lands near the high end", func() {
				// 0.95*25 + (3.8/4)*25 + (22/30)*20 + (90/100)*30
				So(scorer.Score(rec), ShouldEqual, 89.2)
			})
		})

		Convey("When scoring a struggling student", func() {
			rec := model.StudentRecord{
				StudentID:           "STU0002",
				AttendanceRate:      0.5,
				PreviousGPA:         1.8,
				StudyHoursPerWeek:   5,
				CurrentAverageGrade: 55,
			}

			Convey("Then the score lands at the low end", func() {
				So(scorer.Score(rec), ShouldEqual, 43.6)
			})
		})

		Convey("When study hours exceed the normalization cap", func() {
			rec := model.StudentRecord{
				AttendanceRate:      0.9,
				PreviousGPA:         3.0,
				StudyHoursPerWeek:   60,
				CurrentAverageGrade: 80,
			}
			capped := model.StudentRecord{
				AttendanceRate:      0.9,
				PreviousGPA:         3.0,
				StudyHoursPerWeek:   30,
				CurrentAverageGrade: 80,
			}

			Convey("Then the study contribution saturates", func() {
				So(scorer.Score(rec), ShouldEqual, scorer.Score(capped))
			})
		})

		Convey("When scoring a zero-value record", func() {
			score := scorer.Score(model.StudentRecord{})

			Convey("Then documented defaults substitute for missing fields", func() {
				// 0.8*25 + (3.0/4)*25 + (15/30)*20 + (75/100)*30
				So(score, ShouldEqual, 71.3)
			})
		})

		Convey("When scoring any valid record", func() {
			records := []model.StudentRecord{
				{},
				{AttendanceRate: 1.0, PreviousGPA: 4.0, StudyHoursPerWeek: 30, CurrentAverageGrade: 100},
				{AttendanceRate: 0.01, PreviousGPA: 0.1, StudyHoursPerWeek: 1, CurrentAverageGrade: 1},
			}

			Convey("Then the score stays within [0,100]", func() {
				for _, rec := range records {
					score := scorer.Score(rec)
					So(score, ShouldBeGreaterThanOrEqualTo, 0)
					So(score, ShouldBeLessThanOrEqualTo, 100)
				}
			})
		})

		Convey("Then scoring is idempotent", func() {
			rec := model.StudentRecord{
				AttendanceRate:      0.85,
				PreviousGPA:         3.2,
				StudyHoursPerWeek:   12,
				CurrentAverageGrade: 78.5,
			}
			So(scorer.Score(rec), ShouldEqual, scorer.Score(rec))
		})
	})

	Convey("Given a scorer with seeded jitter", t, func() {
		rec := model.StudentRecord{
			AttendanceRate:      0.9,
			PreviousGPA:         3.5,
			StudyHoursPerWeek:   20,
			CurrentAverageGrade: 85,
		}

		Convey("When two scorers share the same seed", func() {
			a := scoring.NewHeuristicScorer(scoring.WithJitter(rand.New(rand.NewSource(7)), 5))
			b := scoring.NewHeuristicScorer(scoring.WithJitter(rand.New(rand.NewSource(7)), 5))

			Convey("Then they produce identical scores", func() {
				So(a.Score(rec), ShouldEqual, b.Score(rec))
			})
		})

		Convey("When jitter is enabled", func() {
			scorer := scoring.NewHeuristicScorer(scoring.WithJitter(rand.New(rand.NewSource(7)), 5))
			base := scoring.NewHeuristicScorer()

			Convey("Then the score stays within the amplitude of the deterministic value", func() {
				score := scorer.Score(rec)
				So(score, ShouldBeGreaterThanOrEqualTo, base.Score(rec)-5)
				So(score, ShouldBeLessThanOrEqualTo, base.Score(rec)+5)
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThanOrEqualTo, 100)
			})
		})

		Convey("When the jitter source is nil", func() {
			scorer := scoring.NewHeuristicScorer(scoring.WithJitter(nil, 5))
			base := scoring.NewHeuristicScorer()

			Convey("Then jitter stays disabled", func() {
				So(scorer.Score(rec), ShouldEqual, base.Score(rec))
			})
		})
	})
}
