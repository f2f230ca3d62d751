package confidence_test

import (
	"testing"

	"github.com/okian/gradecast/internal/domain/confidence"
	"github.com/okian/gradecast/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimate(t *testing.T) {
	Convey("Given the confidence estimator", t, func() {
		Convey("When the record is empty", func() {
			Convey("Then the base confidence applies", func() {
				So(confidence.Estimate(model.StudentRecord{}), ShouldEqual, 0.7)
			})
		})

		Convey("When every high-performer signal holds at once", func() {
			rec := model.StudentRecord{
				AttendanceRate:      0.95,
				PreviousGPA:         3.6,
				CurrentAverageGrade: 88,
			}

			Convey("Then the conjunctive bonus applies", func() {
				So(confidence.Estimate(rec), ShouldEqual, 0.9)
			})
		})

		Convey("When only some signals hold", func() {
			records := []model.StudentRecord{
				{AttendanceRate: 0.95, PreviousGPA: 3.6, CurrentAverageGrade: 75}, // grade too low
				{AttendanceRate: 0.95, PreviousGPA: 2.5, CurrentAverageGrade: 88}, // gpa too low
				{AttendanceRate: 0.85, PreviousGPA: 3.6, CurrentAverageGrade: 88}, // attendance too low
			}

			Convey("Then no partial bonus is granted", func() {
				for _, rec := range records {
					So(confidence.Estimate(rec), ShouldEqual, 0.7)
				}
			})
		})

		Convey("When estimating any record", func() {
			records := []model.StudentRecord{
				{},
				{AttendanceRate: 1.0, PreviousGPA: 4.0, CurrentAverageGrade: 100},
				{AttendanceRate: 0.1, PreviousGPA: 0.5, CurrentAverageGrade: 10},
			}

			Convey("Then confidence stays within [0,1]", func() {
				for _, rec := range records {
					c := confidence.Estimate(rec)
					So(c, ShouldBeGreaterThanOrEqualTo, 0)
					So(c, ShouldBeLessThanOrEqualTo, 1)
				}
			})
		})
	})
}
