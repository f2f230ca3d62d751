// Package insight turns a student record into narrative factors and
// actionable recommendations.
//
// Rules are evaluated in a fixed order and are independent of each other;
// every applicable line is included. The literal strings matter: the batch
// summary counts recommendation frequency by string identity, so they must
// not be reworded casually.
package insight

import (
	"github.com/okian/gradecast/internal/domain/model"
)

// Factor rule thresholds.
const (
	attendanceHighThreshold  = 0.9
	attendanceLowThreshold   = 0.8
	gpaHighThreshold         = 3.5
	gpaLowThreshold          = 2.5
	studyHighThreshold       = 20
	studyLowThreshold        = 10
	extracurricularThreshold = 3
)

// Recommendation rule thresholds.
const (
	supportScoreThreshold      = 70.0
	aspirationalScoreThreshold = 85.0
	attendanceFocusThreshold   = 0.85
	studyIncreaseThreshold     = 15
)

// Factors analyzes the key factors affecting student performance. The
// returned lines follow rule definition order: attendance, GPA, study
// hours, extracurriculars.
func Factors(rec model.StudentRecord) []string {
	var factors []string

	if rec.AttendanceRate >= attendanceHighThreshold {
		factors = append(factors, "Excellent attendance rate supports strong performance")
	} else if rec.AttendanceRate < attendanceLowThreshold {
		factors = append(factors, "Low attendance rate may negatively impact performance")
	}

	if rec.PreviousGPA >= gpaHighThreshold {
		factors = append(factors, "Strong academic history indicates continued success")
	} else if rec.PreviousGPA < gpaLowThreshold {
		factors = append(factors, "Previous academic challenges may require additional support")
	}

	if rec.StudyHoursPerWeek >= studyHighThreshold {
		factors = append(factors, "High study time commitment shows dedication")
	} else if rec.StudyHoursPerWeek < studyLowThreshold {
		factors = append(factors, "Limited study time may affect academic outcomes")
	}

	if rec.ExtracurricularActivities >= extracurricularThreshold {
		factors = append(factors, "Strong extracurricular involvement demonstrates time management")
	}

	return factors
}

// Recommendations generates actionable recommendations from the record and
// the predicted score. Rules are cumulative and evaluated in a fixed order.
func Recommendations(rec model.StudentRecord, score float64) []string {
	var recommendations []string

	if score < supportScoreThreshold {
		recommendations = append(recommendations,
			"Consider additional tutoring or academic support",
			"Increase study time and create a structured study schedule",
		)
	}

	if rec.AttendanceRate < attendanceFocusThreshold {
		recommendations = append(recommendations, "Focus on improving attendance rate")
	}

	if rec.StudyHoursPerWeek < studyIncreaseThreshold {
		recommendations = append(recommendations, "Increase weekly study hours to at least 15-20 hours")
	}

	if score >= aspirationalScoreThreshold {
		recommendations = append(recommendations,
			"Continue current study habits - excellent trajectory",
			"Consider advanced coursework or leadership opportunities",
		)
	}

	if rec.ExtracurricularActivities == 0 {
		recommendations = append(recommendations, "Consider joining extracurricular activities for well-rounded development")
	}

	return recommendations
}
