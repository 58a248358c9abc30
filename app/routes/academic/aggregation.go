package academic

import (
	"github.com/montanaflynn/stats"

	"github.com/Amiradha/Major-Project/app/database"
	"github.com/Amiradha/Major-Project/app/models"
)

// Aggregator turns a fully resolved selection into chart-ready datasets and
// the consolidated results table. It only reads; a repeated call over
// unchanged data yields identical output.
type Aggregator struct {
	store database.AcademicStore
}

func NewAggregator(store database.AcademicStore) *Aggregator {
	return &Aggregator{store: store}
}

// PerformanceReport is the terminal payload of the component-performance page.
type PerformanceReport struct {
	ComponentPerformance models.ComponentPerformance
	GradeDistribution    models.GradeDistribution
	LineChartData        models.LineChartData
	ScatterChartData     models.ScatterChartData
	TotalStudents        int
	CourseDetails        models.CourseDetails
}

// ResultsReport is the terminal payload of the results page.
type ResultsReport struct {
	ConsolidatedData []models.ConsolidatedResult
	TotalStudents    int
}

// ComponentReport computes the per-component averages, the internal-grade
// histogram and the per-student matrices for the selected components.
// Component names with no matching definition contribute nothing.
func (a *Aggregator) ComponentReport(program *models.Program, year int, courseCode string, componentNames []string) (*PerformanceReport, error) {
	components, err := a.store.ComponentsByNames(program.ProgramID, courseCode, componentNames)
	if err != nil {
		return nil, err
	}

	report := &PerformanceReport{
		CourseDetails: models.CourseDetails{
			CourseCode:   courseCode,
			ProgramName:  program.ProgramName,
			AcademicYear: year,
		},
	}

	for _, component := range components {
		avg, err := a.store.AverageMarks(program.ProgramID, courseCode, component.EvaluationID)
		if err != nil {
			return nil, err
		}
		rounded, err := stats.Round(avg, 2)
		if err != nil {
			rounded = 0
		}
		report.ComponentPerformance.Labels = append(report.ComponentPerformance.Labels, component.EvaluationIDName)
		report.ComponentPerformance.Data = append(report.ComponentPerformance.Data, rounded)
	}

	grades, err := a.store.GradeDistribution(program.ProgramID, courseCode, year)
	if err != nil {
		return nil, err
	}
	for _, g := range grades {
		report.GradeDistribution.Labels = append(report.GradeDistribution.Labels, g.Grade)
		report.GradeDistribution.Data = append(report.GradeDistribution.Data, g.Count)
	}

	evaluationIDs := make([]string, 0, len(components))
	for _, component := range components {
		evaluationIDs = append(evaluationIDs, component.EvaluationID)
	}

	rollNumbers, err := a.store.RollNumbers(program.ProgramID, courseCode, evaluationIDs)
	if err != nil {
		return nil, err
	}
	report.LineChartData.RollNumbers = rollNumbers

	for _, component := range components {
		marksByRoll, err := a.store.MarksByRoll(program.ProgramID, courseCode, component.EvaluationID)
		if err != nil {
			return nil, err
		}

		// Dense series for the line chart: every roll number gets a value,
		// 0 standing in for a missing mark. The scatter series drops those
		// zeros, so a genuine zero score disappears from it as well; that
		// sentinel behavior is kept on purpose.
		lineData := make([]float64, 0, len(rollNumbers))
		var points []models.ScatterPoint
		for _, roll := range rollNumbers {
			marks := marksByRoll[roll]
			lineData = append(lineData, marks)
			if marks > 0 {
				points = append(points, models.ScatterPoint{X: roll, Y: marks})
			}
		}

		report.LineChartData.Datasets = append(report.LineChartData.Datasets, models.LineDataset{
			Label: component.EvaluationIDName,
			Data:  lineData,
		})
		report.ScatterChartData.Datasets = append(report.ScatterChartData.Datasets, models.ScatterDataset{
			Label: component.EvaluationIDName,
			Data:  points,
		})
	}

	total, err := a.store.CountSummaries(program.ProgramID, courseCode, year)
	if err != nil {
		return nil, err
	}
	report.TotalStudents = total

	return report, nil
}

// ConsolidatedReport joins every summary row in scope with the student's
// individual component marks and the course's component definitions.
func (a *Aggregator) ConsolidatedReport(program *models.Program, year int, courseCode string) (*ResultsReport, error) {
	components, err := a.store.ComponentsForCourse(program.ProgramID, courseCode)
	if err != nil {
		return nil, err
	}

	marks, err := a.store.MarksInScope(program.ProgramID, courseCode, year)
	if err != nil {
		return nil, err
	}

	// roll number -> evaluation id -> recorded marks (nil = not recorded)
	marksByStudent := make(map[string]map[string]*float64)
	for _, mark := range marks {
		byEval, ok := marksByStudent[mark.RollNumber]
		if !ok {
			byEval = make(map[string]*float64)
			marksByStudent[mark.RollNumber] = byEval
		}
		byEval[mark.EvaluationID] = mark.Marks
	}

	summaries, err := a.store.SummariesInScope(program.ProgramID, courseCode, year)
	if err != nil {
		return nil, err
	}

	consolidated := make([]models.ConsolidatedResult, 0, len(summaries))
	for _, summary := range summaries {
		studentMarks := marksByStudent[summary.RollNumber]

		details := make([]models.EvaluationDetail, 0, len(components))
		for _, component := range components {
			var obtained *float64
			if studentMarks != nil {
				obtained = studentMarks[component.EvaluationID]
			}
			details = append(details, models.EvaluationDetail{
				EvaluationID:   component.EvaluationID,
				EvaluationName: component.EvaluationIDName,
				MaximumMarks:   component.MaximumMarks,
				MarksObtained:  obtained,
			})
		}

		consolidated = append(consolidated, models.ConsolidatedResult{
			ProgramName:       program.ProgramName,
			ProgramType:       program.TypeLabel(),
			CourseCode:        courseCode,
			RollNumber:        summary.RollNumber,
			InternalMarks:     summary.TotalInternal,
			ExternalMarks:     summary.TotalExternal,
			TotalMarks:        summary.TotalMarks,
			Grades:            summary.InternalGrade,
			CreditsEarned:     summary.EarnedCredits,
			SemesterStart:     summary.SemesterStartDate,
			SemesterEnd:       summary.SemesterEndDate,
			EvaluationDetails: details,
		})
	}

	return &ResultsReport{
		ConsolidatedData: consolidated,
		TotalStudents:    len(consolidated),
	}, nil
}
