package academic

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Amiradha/Major-Project/app/config"
	"github.com/Amiradha/Major-Project/app/database"
)

func selectionFromQuery(c *fiber.Ctx) SelectionInput {
	input := SelectionInput{
		Program: c.Query("program"),
		Year:    c.Query("year"),
		Course:  c.Query("course_code"),
	}
	for _, v := range c.Context().QueryArgs().PeekMulti("evaluation_components") {
		input.Components = append(input.Components, string(v))
	}
	return input
}

func baseContext(state *FilterState) fiber.Map {
	return fiber.Map{
		"programs":              state.Programs,
		"selected_program":      state.SelectedProgram,
		"years":                 state.Years,
		"selected_year":         state.SelectedYear,
		"courses":               state.Courses,
		"selected_course":       state.SelectedCourse,
		"all_components":        state.AllComponents,
		"evaluation_components": state.AllComponents,
		"selected_components":   state.SelectedComponents,
	}
}

// renderFault is the single boundary for unexpected faults: full detail goes
// to the server log, the user gets a generic message plus the program list.
func renderFault(c *fiber.Ctx, store database.AcademicStore, view, handler string, err error) error {
	log.Printf("Error in %s: %v", handler, err)

	programs, listErr := store.ProgramNames(config.ProgramNameFilter)
	if listErr != nil {
		log.Printf("Error in %s: failed to load programs: %v", handler, listErr)
	}
	ctx := baseContext(&FilterState{Programs: programs, AllComponents: config.AllComponents})
	ctx["Title"] = pageTitle(view)
	ctx["error_message"] = "An unexpected error occurred."
	return c.Render(view, ctx)
}

func pageTitle(view string) string {
	if view == "academic/results" {
		return "Academic Results"
	}
	return "Component Performance"
}

// ResultsPage renders the consolidated results table behind the cascading
// program -> year -> course filter. Each request re-resolves the whole
// selection; unreached stages render empty.
func ResultsPage(c *fiber.Ctx, store database.AcademicStore) error {
	const view = "academic/results"

	input := selectionFromQuery(c)
	// The results page stops at the course stage; components play no part.
	input.Components = nil

	state := NewResolver(store).Resolve(input)
	ctx := baseContext(state)
	ctx["Title"] = pageTitle(view)

	if state.Err != nil {
		if state.Err.Kind == Unexpected {
			return renderFault(c, store, view, "ResultsPage", state.Err.Unwrap())
		}
		ctx["error_message"] = state.Err.Message
		return c.Render(view, ctx)
	}

	if state.Stage < StageCourseChosen {
		return c.Render(view, ctx)
	}

	report, err := NewAggregator(store).ConsolidatedReport(state.Program, state.Year, state.SelectedCourse)
	if err != nil {
		return renderFault(c, store, view, "ResultsPage", err)
	}

	ctx["consolidated_data"] = report.ConsolidatedData
	ctx["total_students"] = report.TotalStudents
	return c.Render(view, ctx)
}

// ComponentPerformancePage renders the averages, grade-distribution and
// per-student charts for the selected evaluation components.
func ComponentPerformancePage(c *fiber.Ctx, store database.AcademicStore) error {
	const view = "academic/component_performance"

	state := NewResolver(store).Resolve(selectionFromQuery(c))
	ctx := baseContext(state)
	ctx["Title"] = pageTitle(view)

	if state.Err != nil {
		if state.Err.Kind == Unexpected {
			return renderFault(c, store, view, "ComponentPerformancePage", state.Err.Unwrap())
		}
		ctx["error_message"] = state.Err.Message
		return c.Render(view, ctx)
	}

	if state.Stage < StageComponentsChosen {
		return c.Render(view, ctx)
	}

	report, err := NewAggregator(store).ComponentReport(state.Program, state.Year, state.SelectedCourse, state.SelectedComponents)
	if err != nil {
		return renderFault(c, store, view, "ComponentPerformancePage", err)
	}

	ctx["component_performance"] = report.ComponentPerformance
	ctx["grade_distribution"] = report.GradeDistribution
	ctx["line_chart_data"] = report.LineChartData
	ctx["scatter_chart_data"] = report.ScatterChartData
	ctx["total_students"] = report.TotalStudents
	ctx["course_details"] = report.CourseDetails
	return c.Render(view, ctx)
}
