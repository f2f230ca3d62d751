// Package model contains domain models passed between layers.
package model

import "time"

// StudentRecord holds the flat feature set for a single student.
// Field names mirror the tabular data set column names. StudentID is
// immutable once assigned and is the join key across all downstream
// records.
type StudentRecord struct {
	StudentID                 string  `json:"student_id"`
	Name                      string  `json:"name"`
	GradeLevel                string  `json:"grade_level"`
	Age                       int     `json:"age"`
	AttendanceRate            float64 `json:"attendance_rate"` // [0,1]
	PreviousGPA               float64 `json:"previous_gpa"`    // [0,4]
	StudyHoursPerWeek         int     `json:"study_hours_per_week"`
	ExtracurricularActivities int     `json:"extracurricular_activities"`
	ParentEducationLevel      string  `json:"parent_education_level"`
	SocioeconomicStatus       string  `json:"socioeconomic_status"`
	CurrentAverageGrade       float64 `json:"current_average_grade"` // [0,100]
	TotalAssignmentsCompleted int     `json:"total_assignments_completed,omitempty"`
}

// Prediction is the scored, explained and recommended output for one
// student. It is created once per prediction invocation and never
// mutated after.
type Prediction struct {
	StudentID       string    `json:"student_id"`
	StudentName     string    `json:"student_name"`
	Performance     float64   `json:"predicted_performance_percentage"` // [0,100], one decimal
	Confidence      float64   `json:"confidence_score"`                 // [0,1], two decimals
	Factors         []string  `json:"factors_analysis"`
	Recommendations []string  `json:"recommendations"`
	Prompt          string    `json:"prompt_used,omitempty"`
	Error           string    `json:"error,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// Summary aggregates a batch of predictions.
type Summary struct {
	RunID              string                `json:"run_id"`
	Count              int                   `json:"count"`
	MeanPerformance    float64               `json:"mean_performance"`
	MinPerformance     float64               `json:"min_performance"`
	MaxPerformance     float64               `json:"max_performance"`
	MeanConfidence     float64               `json:"mean_confidence"`
	HighPerformers     int                   `json:"high_performers"`   // >= 85
	MediumPerformers   int                   `json:"medium_performers"` // [70,85)
	AtRisk             int                   `json:"at_risk"`           // < 70
	TopRecommendations []RecommendationCount `json:"top_recommendations"`
}

// RecommendationCount pairs a recommendation line with how many
// predictions carried it.
type RecommendationCount struct {
	Recommendation string `json:"recommendation"`
	Count          int    `json:"count"`
}
