package database

import (
	"errors"

	"github.com/Amiradha/Major-Project/app/models"
)

var (
	// ErrProgramNotFound means no active program matched the given name.
	ErrProgramNotFound = errors.New("program not found")
	// ErrProgramAmbiguous means more than one active program matched; name
	// uniqueness only holds among active rows and is not enforced by the
	// schema, so the lookup refuses to guess.
	ErrProgramAmbiguous = errors.New("program name is ambiguous")
	// ErrSessionNotFound means the session id has no live row in the store.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidCredentials means no user row matched the username/password
	// pair exactly.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AcademicStore is the read-only query surface over the four reference
// tables. Program membership is decided by a prefix test of program_id
// against program_course_key; there are no foreign keys in the source schema
// and none are assumed here.
type AcademicStore interface {
	// ProgramNames returns the distinct names of active programs whose name
	// contains nameFilter.
	ProgramNames(nameFilter string) ([]string, error)
	// ActiveProgramByName resolves a display name to exactly one active
	// program, or ErrProgramNotFound / ErrProgramAmbiguous.
	ActiveProgramByName(name string) (*models.Program, error)
	// YearsForProgram returns the distinct calendar years of
	// semester_start_date over prefix-matched summaries, ascending.
	YearsForProgram(programID string) ([]int, error)
	// CoursesForProgramYear returns the distinct course codes offered under
	// the program in the given year.
	CoursesForProgramYear(programID string, year int) ([]string, error)
	// ComponentNames returns the distinct display names of the components
	// defined for the course under the program.
	ComponentNames(programID, courseCode string) ([]string, error)
	// ComponentsByNames returns the component definitions whose display name
	// is in names, in query order.
	ComponentsByNames(programID, courseCode string, names []string) ([]models.EvaluationComponent, error)
	// ComponentsForCourse returns every component definition for the course.
	ComponentsForCourse(programID, courseCode string) ([]models.EvaluationComponent, error)
	// AverageMarks returns the mean of recorded marks for one component over
	// all prefix-matched students. NULL marks do not enter the mean; an empty
	// result set yields 0.
	AverageMarks(programID, courseCode, evaluationID string) (float64, error)
	// GradeDistribution counts summaries per non-null internal grade.
	GradeDistribution(programID, courseCode string, year int) ([]models.GradeCount, error)
	// RollNumbers returns the distinct, ascending roll numbers holding a mark
	// row for any of the given components.
	RollNumbers(programID, courseCode string, evaluationIDs []string) ([]string, error)
	// MarksByRoll maps roll number to recorded marks for one component; rolls
	// with a NULL mark are omitted.
	MarksByRoll(programID, courseCode, evaluationID string) (map[string]float64, error)
	// SummariesInScope returns the summary rows for program+course+year.
	SummariesInScope(programID, courseCode string, year int) ([]models.StudentMarkSummary, error)
	// MarksInScope returns the mark rows for program+course+year.
	MarksInScope(programID, courseCode string, year int) ([]models.StudentMark, error)
	// CountSummaries counts the summary rows for program+course+year.
	CountSummaries(programID, courseCode string, year int) (int, error)
}

// UserStore is the credential and session surface.
type UserStore interface {
	// UserByCredentials matches username and password exactly, returning
	// ErrInvalidCredentials when no row matches. The comparison is plain
	// text by contract with the legacy credential table.
	UserByCredentials(username, password string) (*models.User, error)
	CreateSession(session *models.Session) error
	// SessionByID returns ErrSessionNotFound for unknown or expired ids.
	SessionByID(id string) (*models.Session, error)
	DeleteSession(id string) error
}
