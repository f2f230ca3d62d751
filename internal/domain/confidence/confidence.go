// Package confidence estimates how much weight to give a prediction.
package confidence

import (
	"math"

	"github.com/okian/gradecast/internal/domain/model"
)

// Base confidence and the conjunctive bonus applied when a student is a
// consistent high performer on every signal at once. The bonus is all or
// nothing, not per condition.
const (
	baseConfidence   = 0.7
	consistencyBonus = 0.2

	attendanceThreshold = 0.9
	gpaThreshold        = 3.0
	gradeThreshold      = 80.0
)

// Estimate returns a confidence score in [0,1] with two decimals of
// precision. The zero-value record yields the base confidence.
func Estimate(rec model.StudentRecord) float64 {
	c := baseConfidence

	if rec.AttendanceRate > attendanceThreshold &&
		rec.PreviousGPA > gpaThreshold &&
		rec.CurrentAverageGrade > gradeThreshold {
		c += consistencyBonus
	}

	c = math.Min(1.0, c)
	return math.Round(c*100) / 100
}
