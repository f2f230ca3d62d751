// Package gen produces synthetic student records that mimic a tabular
// student data export.
package gen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/okian/gradecast/internal/domain/model"
)

// Default generation parameters.
const (
	defaultCount = 20
	defaultSeed  = 42

	minAge = 14
	maxAge = 19

	minAttendance   = 0.7
	attendanceRange = 0.3

	minGPA   = 2.0
	gpaRange = 2.0

	minStudyHours = 5
	maxStudyHours = 30

	maxExtracurricular = 5

	minSubjectGrade   = 60.0
	subjectGradeRange = 40.0

	minAssignments = 15
	maxAssignments = 25
)

// Catalogs sampled for categorical fields.
var (
	defaultSubjects = []string{
		"Mathematics", "Science", "English", "History",
		"Chemistry", "Physics", "Biology", "Computer Science",
	}
	gradeLevels      = []string{"9th", "10th", "11th", "12th"}
	parentEducations = []string{"High School", "Bachelor", "Master", "PhD"}
	socioeconomics   = []string{"Low", "Medium", "High"}
)

// Generator builds reproducible synthetic student records. Randomness comes
// from an injected seeded source, so the same seed always produces the same
// data set.
type Generator struct {
	count    int
	rng      *rand.Rand
	subjects []string
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		count:    defaultCount,
		rng:      rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible data
		subjects: defaultSubjects,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate produces the configured number of student records. Ids are
// sequential (STU0001, STU0002, ...) and unique within the set.
func (g *Generator) Generate() []model.StudentRecord {
	records := make([]model.StudentRecord, g.count)
	for i := range records {
		records[i] = g.generateOne(i + 1)
	}
	return records
}

// generateOne builds a single record. The current average grade is the mean
// of per-subject grades, and total assignments sum across subjects, like a
// gradebook export would produce.
func (g *Generator) generateOne(seq int) model.StudentRecord {
	var gradeSum float64
	var assignments int
	for range g.subjects {
		gradeSum += minSubjectGrade + g.rng.Float64()*subjectGradeRange
		assignments += g.intBetween(minAssignments, maxAssignments)
	}
	avgGrade := round2(gradeSum / float64(len(g.subjects)))

	return model.StudentRecord{
		StudentID:                 fmt.Sprintf("STU%04d", seq),
		Name:                      fmt.Sprintf("Student_%d", seq),
		GradeLevel:                gradeLevels[g.rng.Intn(len(gradeLevels))],
		Age:                       g.intBetween(minAge, maxAge),
		AttendanceRate:            round2(minAttendance + g.rng.Float64()*attendanceRange),
		PreviousGPA:               round2(minGPA + g.rng.Float64()*gpaRange),
		StudyHoursPerWeek:         g.intBetween(minStudyHours, maxStudyHours),
		ExtracurricularActivities: g.rng.Intn(maxExtracurricular + 1),
		ParentEducationLevel:      parentEducations[g.rng.Intn(len(parentEducations))],
		SocioeconomicStatus:       socioeconomics[g.rng.Intn(len(socioeconomics))],
		CurrentAverageGrade:       avgGrade,
		TotalAssignmentsCompleted: assignments,
	}
}

// intBetween returns a random int in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// round2 rounds to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
