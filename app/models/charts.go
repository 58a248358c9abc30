package models

import "time"

// ComponentPerformance carries the per-component average marks as parallel
// label/data slices, in component-definition order.
type ComponentPerformance struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// GradeDistribution carries the internal-grade histogram as parallel slices.
// Grades absent from every row in scope never appear as zero-count entries.
type GradeDistribution struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// LineDataset is one component's marks aligned to the shared roll-number
// axis; entries with no recorded mark hold 0.
type LineDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// LineChartData is the dense per-student matrix for line rendering.
type LineChartData struct {
	RollNumbers []string      `json:"roll_numbers"`
	Datasets    []LineDataset `json:"datasets"`
}

// ScatterPoint is one plotted (roll number, marks) pair.
type ScatterPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// ScatterDataset is one component's sparse point list. Zero-valued marks are
// dropped: the chart treats 0 as the missing-value sentinel, so a genuine
// zero score is indistinguishable from an unrecorded one here (the line
// datasets keep the 0).
type ScatterDataset struct {
	Label string         `json:"label"`
	Data  []ScatterPoint `json:"data"`
}

// ScatterChartData is the sparse per-student matrix for scatter rendering.
type ScatterChartData struct {
	Datasets []ScatterDataset `json:"datasets"`
}

// CourseDetails identifies the selection a report was built for.
type CourseDetails struct {
	CourseCode   string `json:"course_code"`
	ProgramName  string `json:"program_name"`
	AcademicYear int    `json:"academic_year"`
}

// EvaluationDetail is one component row inside a consolidated student record.
// MarksObtained is nil when the student has no mark row for the component.
type EvaluationDetail struct {
	EvaluationID   string   `json:"evaluation_id"`
	EvaluationName string   `json:"evaluation_name"`
	MaximumMarks   int      `json:"maximum_marks"`
	MarksObtained  *float64 `json:"marks_obtained"`
}

// ConsolidatedResult is one student's combined summary + component detail row.
type ConsolidatedResult struct {
	ProgramName       string             `json:"program_name"`
	ProgramType       string             `json:"program_type"` // "Full-Time" / "Part-Time"
	CourseCode        string             `json:"course_code"`
	RollNumber        string             `json:"roll_number"`
	InternalMarks     *int               `json:"internal_marks"`
	ExternalMarks     *int               `json:"external_marks"`
	TotalMarks        *int               `json:"total_marks"`
	Grades            *string            `json:"grades"`
	CreditsEarned     *float64           `json:"credits_earned"`
	SemesterStart     time.Time          `json:"semester_start"`
	SemesterEnd       time.Time          `json:"semester_end"`
	EvaluationDetails []EvaluationDetail `json:"evaluation_details"`
}
