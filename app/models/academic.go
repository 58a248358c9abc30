package models

import "time"

// Program is one degree/offering definition, maintained outside this system.
// Lookups by name must filter Active = "Y"; a program name is only unique
// among active rows.
type Program struct {
	ProgramID    string   `json:"program_id"`
	ProgramCode  string   `json:"program_code"`
	ProgramName  string   `json:"program_name"`
	ProgramType  string   `json:"program_type"` // "F" = full-time
	ProgramMode  string   `json:"program_mode"`
	NoOfTerms    *int     `json:"no_of_terms,omitempty"`
	TotalCredits *float64 `json:"total_credits,omitempty"`
	UgPg         string   `json:"ug_pg"`
	Active       string   `json:"active"` // "Y" when selectable
}

// TypeLabel maps the single-letter program type to its display label.
func (p *Program) TypeLabel() string {
	if p.ProgramType == "F" {
		return "Full-Time"
	}
	return "Part-Time"
}

// EvaluationComponent defines one gradable component (e.g. "CT1", "EXT") of a
// course within a program. Unique on (program_id, evaluation_id, group_id,
// course_code).
type EvaluationComponent struct {
	ProgramID         string `json:"program_id"`
	EvaluationID      string `json:"evaluation_id"`
	EvaluationIDName  string `json:"evaluation_id_name"`
	GroupID           string `json:"group_id"`
	CourseCode        string `json:"course_code"`
	MaximumMarks      int    `json:"maximum_marks"`
	Weightage         int    `json:"weightage"`
	ComponentFullName string `json:"component_full_name"`
}

// StudentMark is one student's score on one evaluation component within one
// course offering. Marks is nil when the score has not been recorded.
// ProgramCourseKey encodes program+course+offering; rows belong to a program
// when program_id is a prefix of that key (no foreign key exists).
type StudentMark struct {
	RollNumber        string    `json:"roll_number"`
	ProgramCourseKey  string    `json:"program_course_key"`
	EvaluationID      string    `json:"evaluation_id"`
	CourseCode        string    `json:"course_code"`
	SemesterStartDate time.Time `json:"semester_start_date"`
	SemesterEndDate   time.Time `json:"semester_end_date"`
	Marks             *float64  `json:"marks,omitempty"`
	Grades            *string   `json:"grades,omitempty"`
	PassFail          *string   `json:"pass_fail,omitempty"`
}

// StudentMarkSummary is one student's pre-aggregated result for one course
// offering. It is derived externally; this system only reads it.
type StudentMarkSummary struct {
	RollNumber        string    `json:"roll_number"`
	ProgramCourseKey  string    `json:"program_course_key"`
	CourseCode        string    `json:"course_code"`
	SemesterStartDate time.Time `json:"semester_start_date"`
	SemesterEndDate   time.Time `json:"semester_end_date"`
	TotalInternal     *int      `json:"total_internal,omitempty"`
	TotalExternal     *int      `json:"total_external,omitempty"`
	TotalMarks        *int      `json:"total_marks,omitempty"`
	InternalGrade     *string   `json:"internal_grade,omitempty"`
	ExternalGrade     *string   `json:"external_grade,omitempty"`
	FinalGradePoint   *float64  `json:"final_grade_point,omitempty"`
	EarnedCredits     *float64  `json:"earned_credits,omitempty"`
}

// GradeCount is one bucket of the internal-grade distribution.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}
