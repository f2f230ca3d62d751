// Package store loads student records from tabular files and persists
// prediction results as JSON. Both are pass-through I/O collaborators of
// the prediction core.
package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/pkg/logger"
)

// Columns a student CSV must carry. Remaining columns are optional and
// default when absent.
var requiredColumns = []string{"student_id", "name"}

// LoadCSV parses a header-mapped CSV file into student records. Rows that
// fail to parse are skipped with a warning; a missing required column or an
// unreadable file is an error.
func LoadCSV(ctx context.Context, path string) ([]model.StudentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrOpenFile, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, name)
		}
	}

	log := logger.Get().Named("store")

	var records []model.StudentRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn(ctx, "skipping malformed csv row",
				logger.Int("line", line),
				logger.Error(err),
			)
			continue
		}

		rec, err := parseRow(cols, row)
		if err != nil {
			log.Warn(ctx, "skipping unparseable csv row",
				logger.Int("line", line),
				logger.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRow maps one CSV row onto a StudentRecord. Optional fields left
// empty stay at their zero value and default downstream.
func parseRow(cols map[string]int, row []string) (model.StudentRecord, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rec := model.StudentRecord{
		StudentID:            field("student_id"),
		Name:                 field("name"),
		GradeLevel:           field("grade_level"),
		ParentEducationLevel: field("parent_education_level"),
		SocioeconomicStatus:  field("socioeconomic_status"),
	}
	if rec.StudentID == "" {
		return model.StudentRecord{}, fmt.Errorf("empty student_id")
	}

	var err error
	if rec.Age, err = parseInt(field("age")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("age: %w", err)
	}
	if rec.AttendanceRate, err = parseFloat(field("attendance_rate")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("attendance_rate: %w", err)
	}
	if rec.PreviousGPA, err = parseFloat(field("previous_gpa")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("previous_gpa: %w", err)
	}
	if rec.StudyHoursPerWeek, err = parseInt(field("study_hours_per_week")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("study_hours_per_week: %w", err)
	}
	if rec.ExtracurricularActivities, err = parseInt(field("extracurricular_activities")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("extracurricular_activities: %w", err)
	}
	if rec.CurrentAverageGrade, err = parseFloat(field("current_average_grade")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("current_average_grade: %w", err)
	}
	if rec.TotalAssignmentsCompleted, err = parseInt(field("total_assignments_completed")); err != nil {
		return model.StudentRecord{}, fmt.Errorf("total_assignments_completed: %w", err)
	}

	return rec, nil
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// LookupStudent resolves a student id inside a loaded record set. An
// unknown id is reported per record and never aborts the caller's batch.
func LookupStudent(records []model.StudentRecord, id string) (model.StudentRecord, error) {
	for _, rec := range records {
		if rec.StudentID == id {
			return rec, nil
		}
	}
	return model.StudentRecord{}, fmt.Errorf("%w: %s", ErrUnknownStudent, id)
}
