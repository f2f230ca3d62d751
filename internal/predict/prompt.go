package predict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/gradecast/internal/domain/model"
)

// BuildPrompt renders the structured prompt a hosted model receives for one
// student. The string is carried on the result for traceability and is
// never reparsed.
func BuildPrompt(rec model.StudentRecord) string {
	var b strings.Builder

	b.WriteString("You are an AI education analyst. Based on the following student data, ")
	b.WriteString("predict their academic performance percentage for the next semester.\n\n")
	b.WriteString("Student Information:\n")
	fmt.Fprintf(&b, "- ID: %s\n", rec.StudentID)
	fmt.Fprintf(&b, "- Name: %s\n", rec.Name)
	fmt.Fprintf(&b, "- Grade Level: %s\n", rec.GradeLevel)
	fmt.Fprintf(&b, "- Age: %d\n", rec.Age)
	fmt.Fprintf(&b, "- Attendance Rate: %s%%\n", formatFloat(rec.AttendanceRate*100))
	fmt.Fprintf(&b, "- Previous GPA: %s\n", formatFloat(rec.PreviousGPA))
	fmt.Fprintf(&b, "- Study Hours per Week: %d\n", rec.StudyHoursPerWeek)
	fmt.Fprintf(&b, "- Extracurricular Activities: %d\n", rec.ExtracurricularActivities)
	fmt.Fprintf(&b, "- Parent Education Level: %s\n", rec.ParentEducationLevel)
	fmt.Fprintf(&b, "- Socioeconomic Status: %s\n", rec.SocioeconomicStatus)
	fmt.Fprintf(&b, "- Current Average Grade: %s%%\n", formatFloat(rec.CurrentAverageGrade))
	fmt.Fprintf(&b, "- Total Assignments Completed: %d\n", rec.TotalAssignmentsCompleted)
	b.WriteString("\nPlease provide a predicted performance percentage (0-100%) for the next semester based on these factors.\n")
	b.WriteString(`Format your response as: "Predicted Performance: X%"`)

	return b.String()
}

// formatFloat renders a float without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
