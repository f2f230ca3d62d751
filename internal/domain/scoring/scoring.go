// Package scoring implements the heuristic performance formula that stands
// in for hosted model inference.
package scoring

import (
	"math"
	"math/rand"

	"github.com/okian/gradecast/internal/domain/model"
)

// Canonical weighting table: attendance 25%, prior GPA 25%, study hours
// 20%, current grade 30%. Each feature is normalized to [0,1] before
// weighting, so the total spans the full clamp range. The formula is
//
//	attendance*attendanceWeight + (gpa/4)*gpaWeight +
//	min(study/30, 1)*studyWeight + (grade/100)*gradeWeight
//
// rounded to one decimal and clamped to [lowBound, highBound].
const (
	attendanceWeight = 25.0
	gpaWeight        = 25.0
	studyWeight      = 20.0
	gradeWeight      = 30.0

	gpaScale      = 4.0
	gradeScale    = 100.0
	maxStudyHours = 30.0

	lowBound  = 0.0
	highBound = 100.0
)

// Defaults substituted for unset fields. Zero-valued optional fields are
// treated as absent rather than failing the prediction.
const (
	defaultAttendance = 0.8
	defaultGPA        = 3.0
	defaultStudyHours = 15
	defaultGrade      = 75.0
)

// Scorer computes a performance percentage from a student record.
type Scorer interface {
	Score(rec model.StudentRecord) float64
}

// HeuristicScorer implements Scorer with a fixed-weight linear combination
// of four input features. It has no side effects; the optional jitter draws
// from an injected source so tests can disable it.
type HeuristicScorer struct {
	jitterSource    *rand.Rand
	jitterAmplitude float64
}

// NewHeuristicScorer creates a new scorer with configuration options.
// Without options the scorer is fully deterministic.
func NewHeuristicScorer(opts ...Option) *HeuristicScorer {
	s := &HeuristicScorer{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes the predicted performance percentage for the record.
// The result is always within [0,100] with one decimal of precision.
func (s *HeuristicScorer) Score(rec model.StudentRecord) float64 {
	attendance := rec.AttendanceRate
	if attendance == 0 {
		attendance = defaultAttendance
	}
	gpa := rec.PreviousGPA
	if gpa == 0 {
		gpa = defaultGPA
	}
	studyHours := float64(rec.StudyHoursPerWeek)
	if studyHours == 0 {
		studyHours = defaultStudyHours
	}
	grade := rec.CurrentAverageGrade
	if grade == 0 {
		grade = defaultGrade
	}

	total := attendance * attendanceWeight
	total += (gpa / gpaScale) * gpaWeight
	total += math.Min(studyHours/maxStudyHours, 1) * studyWeight
	total += (grade / gradeScale) * gradeWeight

	if s.jitterSource != nil && s.jitterAmplitude > 0 {
		total += (s.jitterSource.Float64()*2 - 1) * s.jitterAmplitude
	}

	total = math.Round(total*10) / 10
	return math.Max(lowBound, math.Min(highBound, total))
}
