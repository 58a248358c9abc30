package academic

import (
	"strconv"

	"github.com/Amiradha/Major-Project/app/config"
	"github.com/Amiradha/Major-Project/app/database"
	"github.com/Amiradha/Major-Project/app/models"
)

// ErrorKind classifies a resolver failure for the rendering boundary.
type ErrorKind int

const (
	// NotFound: the program name did not resolve to exactly one active program.
	NotFound ErrorKind = iota
	// InvalidFormat: the year did not parse as an integer.
	InvalidFormat
	// InvalidSelection: the value is not in the domain computed from the
	// prior stage.
	InvalidSelection
	// Unexpected: a store fault or any other failure outside the selection
	// contract. Details are logged, never rendered.
	Unexpected
)

// ResolveError carries the failure kind plus the user-visible message.
type ResolveError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *ResolveError) Error() string { return e.Message }

// Unwrap exposes the underlying store error for logging.
func (e *ResolveError) Unwrap() error { return e.cause }

// Stage is how far a selection has progressed through the cascade.
type Stage int

const (
	StageUnselected Stage = iota
	StageProgramChosen
	StageYearChosen
	StageCourseChosen
	StageComponentsChosen
)

// SelectionInput is the raw request selection, all values as submitted.
type SelectionInput struct {
	Program    string
	Year       string
	Course     string
	Components []string
}

// FilterState is everything resolved so far: the confirmed selections, the
// valid-options domain for each reached stage, and the first error hit (if
// any). It is always returned whole so the page can re-render the partial
// cascade.
type FilterState struct {
	Stage Stage

	Programs        []string
	SelectedProgram string
	Program         *models.Program

	Years        []int
	SelectedYear string
	Year         int

	Courses        []string
	SelectedCourse string

	AllComponents      []string
	SelectedComponents []string

	Err *ResolveError
}

// Resolver walks the ordered filter cascade. Each stage validates its input
// against the domain computed from the prior stage and then computes the next
// stage's domain. An empty input halts progression without an error; an
// invalid input halts it with one. Prior context is never discarded.
type Resolver struct {
	store database.AcademicStore
}

func NewResolver(store database.AcademicStore) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(input SelectionInput) *FilterState {
	state := &FilterState{
		Stage:              StageUnselected,
		SelectedProgram:    input.Program,
		SelectedYear:       input.Year,
		SelectedCourse:     input.Course,
		SelectedComponents: input.Components,
		AllComponents:      config.AllComponents,
	}

	programs, err := r.store.ProgramNames(config.ProgramNameFilter)
	if err != nil {
		state.Err = &ResolveError{Kind: Unexpected, Message: "An unexpected error occurred.", cause: err}
		return state
	}
	state.Programs = programs

	if input.Program == "" {
		return state
	}

	program, err := r.store.ActiveProgramByName(input.Program)
	if err != nil {
		switch err {
		case database.ErrProgramNotFound, database.ErrProgramAmbiguous:
			state.Err = &ResolveError{Kind: NotFound, Message: "Invalid program selected.", cause: err}
		default:
			state.Err = &ResolveError{Kind: Unexpected, Message: "An unexpected error occurred.", cause: err}
		}
		return state
	}
	state.Program = program

	years, err := r.store.YearsForProgram(program.ProgramID)
	if err != nil {
		state.Err = &ResolveError{Kind: Unexpected, Message: "An unexpected error occurred.", cause: err}
		return state
	}
	state.Years = years
	state.Stage = StageProgramChosen

	if input.Year == "" {
		return state
	}

	year, err := strconv.Atoi(input.Year)
	if err != nil {
		state.Err = &ResolveError{Kind: InvalidFormat, Message: "Invalid year format."}
		return state
	}
	if !containsInt(state.Years, year) {
		state.Err = &ResolveError{Kind: InvalidSelection, Message: "Invalid year selected."}
		return state
	}
	state.Year = year

	courses, err := r.store.CoursesForProgramYear(program.ProgramID, year)
	if err != nil {
		state.Err = &ResolveError{Kind: Unexpected, Message: "An unexpected error occurred.", cause: err}
		return state
	}
	state.Courses = courses
	state.Stage = StageYearChosen

	if input.Course == "" {
		return state
	}

	if !containsString(state.Courses, input.Course) {
		state.Err = &ResolveError{Kind: InvalidSelection, Message: "Invalid course selected."}
		return state
	}
	state.Stage = StageCourseChosen

	// Component names are not validated against the course's actual
	// definitions: unknown names simply aggregate to nothing.
	if len(input.Components) == 0 {
		return state
	}
	state.Stage = StageComponentsChosen

	return state
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
