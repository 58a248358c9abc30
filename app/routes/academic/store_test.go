package academic

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Amiradha/Major-Project/app/database"
	"github.com/Amiradha/Major-Project/app/models"
)

// fakeStore is an in-memory AcademicStore mirroring the SQL semantics,
// including the prefix join of program_id against program_course_key.
type fakeStore struct {
	programs   []models.Program
	components []models.EvaluationComponent
	marks      []models.StudentMark
	summaries  []models.StudentMarkSummary

	failErr error // when set, every method fails with it
}

var _ database.AcademicStore = (*fakeStore)(nil)

func (f *fakeStore) ProgramNames(nameFilter string) ([]string, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	seen := map[string]bool{}
	var names []string
	for _, p := range f.programs {
		if p.Active != "Y" || !strings.Contains(p.ProgramName, nameFilter) {
			continue
		}
		if !seen[p.ProgramName] {
			seen[p.ProgramName] = true
			names = append(names, p.ProgramName)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeStore) ActiveProgramByName(name string) (*models.Program, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	var matches []*models.Program
	for i := range f.programs {
		if f.programs[i].ProgramName == name && f.programs[i].Active == "Y" {
			matches = append(matches, &f.programs[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, database.ErrProgramNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, database.ErrProgramAmbiguous
	}
}

func (f *fakeStore) YearsForProgram(programID string) ([]int, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	seen := map[int]bool{}
	var years []int
	for _, s := range f.summaries {
		if !strings.HasPrefix(s.ProgramCourseKey, programID) {
			continue
		}
		y := s.SemesterStartDate.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

func (f *fakeStore) CoursesForProgramYear(programID string, year int) ([]string, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	seen := map[string]bool{}
	var courses []string
	for _, s := range f.summaries {
		if !strings.HasPrefix(s.ProgramCourseKey, programID) || s.SemesterStartDate.Year() != year {
			continue
		}
		if !seen[s.CourseCode] {
			seen[s.CourseCode] = true
			courses = append(courses, s.CourseCode)
		}
	}
	return courses, nil
}

func (f *fakeStore) ComponentNames(programID, courseCode string) ([]string, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	seen := map[string]bool{}
	var names []string
	for _, c := range f.components {
		if c.ProgramID != programID || c.CourseCode != courseCode {
			continue
		}
		if !seen[c.EvaluationIDName] {
			seen[c.EvaluationIDName] = true
			names = append(names, c.EvaluationIDName)
		}
	}
	return names, nil
}

func (f *fakeStore) ComponentsByNames(programID, courseCode string, names []string) ([]models.EvaluationComponent, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	var out []models.EvaluationComponent
	for _, c := range f.components {
		if c.ProgramID == programID && c.CourseCode == courseCode && wanted[c.EvaluationIDName] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ComponentsForCourse(programID, courseCode string) ([]models.EvaluationComponent, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	var out []models.EvaluationComponent
	for _, c := range f.components {
		if c.ProgramID == programID && c.CourseCode == courseCode {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) AverageMarks(programID, courseCode, evaluationID string) (float64, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	var sum float64
	var n int
	for _, m := range f.marks {
		if m.EvaluationID != evaluationID || m.CourseCode != courseCode ||
			!strings.HasPrefix(m.ProgramCourseKey, programID) || m.Marks == nil {
			continue
		}
		sum += *m.Marks
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

func (f *fakeStore) GradeDistribution(programID, courseCode string, year int) ([]models.GradeCount, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	counts := map[string]int{}
	var order []string
	for _, s := range f.summaries {
		if s.CourseCode != courseCode || s.SemesterStartDate.Year() != year ||
			!strings.HasPrefix(s.ProgramCourseKey, programID) || s.InternalGrade == nil {
			continue
		}
		if _, ok := counts[*s.InternalGrade]; !ok {
			order = append(order, *s.InternalGrade)
		}
		counts[*s.InternalGrade]++
	}
	var out []models.GradeCount
	for _, g := range order {
		out = append(out, models.GradeCount{Grade: g, Count: counts[g]})
	}
	return out, nil
}

func (f *fakeStore) RollNumbers(programID, courseCode string, evaluationIDs []string) ([]string, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	wanted := map[string]bool{}
	for _, id := range evaluationIDs {
		wanted[id] = true
	}
	seen := map[string]bool{}
	var rolls []string
	for _, m := range f.marks {
		if !wanted[m.EvaluationID] || m.CourseCode != courseCode ||
			!strings.HasPrefix(m.ProgramCourseKey, programID) {
			continue
		}
		if !seen[m.RollNumber] {
			seen[m.RollNumber] = true
			rolls = append(rolls, m.RollNumber)
		}
	}
	sort.Strings(rolls)
	return rolls, nil
}

func (f *fakeStore) MarksByRoll(programID, courseCode, evaluationID string) (map[string]float64, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	out := map[string]float64{}
	for _, m := range f.marks {
		if m.EvaluationID != evaluationID || m.CourseCode != courseCode ||
			!strings.HasPrefix(m.ProgramCourseKey, programID) || m.Marks == nil {
			continue
		}
		out[m.RollNumber] = *m.Marks
	}
	return out, nil
}

func (f *fakeStore) SummariesInScope(programID, courseCode string, year int) ([]models.StudentMarkSummary, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	var out []models.StudentMarkSummary
	for _, s := range f.summaries {
		if s.CourseCode == courseCode && s.SemesterStartDate.Year() == year &&
			strings.HasPrefix(s.ProgramCourseKey, programID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) MarksInScope(programID, courseCode string, year int) ([]models.StudentMark, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	var out []models.StudentMark
	for _, m := range f.marks {
		if m.CourseCode == courseCode && m.SemesterStartDate.Year() == year &&
			strings.HasPrefix(m.ProgramCourseKey, programID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) CountSummaries(programID, courseCode string, year int) (int, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	summaries, _ := f.SummariesInScope(programID, courseCode, year)
	return len(summaries), nil
}

var errStoreDown = errors.New("store unavailable")

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func iptr(v int) *int         { return &v }

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// newFixtureStore builds the two-student CS301 offering used across the
// resolver and aggregation tests: R1 scored CT1=80 and EXT=70, R2 has no
// recorded CT1 mark and EXT=90.
func newFixtureStore() *fakeStore {
	start := date(2023, 7, 1)
	end := date(2023, 12, 15)

	return &fakeStore{
		programs: []models.Program{
			{ProgramID: "BTCS", ProgramName: "B.TECH CS", ProgramType: "F", Active: "Y"},
			{ProgramID: "BTME", ProgramName: "B.TECH ME", ProgramType: "P", Active: "Y"},
			{ProgramID: "BTCSX", ProgramName: "B.TECH CS OLD", ProgramType: "F", Active: "N"},
		},
		components: []models.EvaluationComponent{
			{ProgramID: "BTCS", EvaluationID: "C1", EvaluationIDName: "CT1", GroupID: "G1", CourseCode: "CS301", MaximumMarks: 100, Weightage: 30, ComponentFullName: "Class Test 1"},
			{ProgramID: "BTCS", EvaluationID: "EX", EvaluationIDName: "EXT", GroupID: "G1", CourseCode: "CS301", MaximumMarks: 100, Weightage: 70, ComponentFullName: "External Exam"},
		},
		marks: []models.StudentMark{
			{RollNumber: "R1", ProgramCourseKey: "BTCS-CS301-23", EvaluationID: "C1", CourseCode: "CS301", SemesterStartDate: start, SemesterEndDate: end, Marks: fptr(80)},
			{RollNumber: "R1", ProgramCourseKey: "BTCS-CS301-23", EvaluationID: "EX", CourseCode: "CS301", SemesterStartDate: start, SemesterEndDate: end, Marks: fptr(70)},
			{RollNumber: "R2", ProgramCourseKey: "BTCS-CS301-23", EvaluationID: "C1", CourseCode: "CS301", SemesterStartDate: start, SemesterEndDate: end, Marks: nil},
			{RollNumber: "R2", ProgramCourseKey: "BTCS-CS301-23", EvaluationID: "EX", CourseCode: "CS301", SemesterStartDate: start, SemesterEndDate: end, Marks: fptr(90)},
		},
		summaries: []models.StudentMarkSummary{
			{RollNumber: "R1", ProgramCourseKey: "BTCS-CS301-23", CourseCode: "CS301", SemesterStartDate: start, SemesterEndDate: end, TotalInternal: iptr(80), TotalExternal: iptr(70), TotalMarks: iptr(150), InternalGrade: sptr("A"), EarnedCredits: fptr(4)},
			{RollNumber: "R2", ProgramCourseKey: "BTCS-CS301-23", CourseCode: "CS301", SemesterStartDate: start, SemesterEndDate: end, TotalInternal: iptr(60), TotalExternal: iptr(90), TotalMarks: iptr(150), InternalGrade: sptr("B"), EarnedCredits: fptr(4)},
		},
	}
}
