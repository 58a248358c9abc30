package database

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/Amiradha/Major-Project/app/models"
)

// SQLAcademicStore implements AcademicStore over PostgreSQL.
type SQLAcademicStore struct {
	DB *sql.DB
}

func NewAcademicStore(db *sql.DB) *SQLAcademicStore {
	return &SQLAcademicStore{DB: db}
}

func (s *SQLAcademicStore) ProgramNames(nameFilter string) ([]string, error) {
	query := `SELECT DISTINCT program_name FROM program_master
			  WHERE program_name ILIKE '%' || $1 || '%' AND active = 'Y'
			  ORDER BY program_name`

	rows, err := s.DB.Query(query, nameFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLAcademicStore) ActiveProgramByName(name string) (*models.Program, error) {
	query := `SELECT program_id, program_code, program_name, program_type, program_mode,
			  no_of_terms, total_credits, ug_pg, active
			  FROM program_master WHERE program_name = $1 AND active = 'Y'`

	rows, err := s.DB.Query(query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		p := &models.Program{}
		var noOfTerms sql.NullInt64
		var totalCredits sql.NullFloat64
		err := rows.Scan(&p.ProgramID, &p.ProgramCode, &p.ProgramName, &p.ProgramType,
			&p.ProgramMode, &noOfTerms, &totalCredits, &p.UgPg, &p.Active)
		if err != nil {
			return nil, err
		}
		if noOfTerms.Valid {
			n := int(noOfTerms.Int64)
			p.NoOfTerms = &n
		}
		if totalCredits.Valid {
			c := totalCredits.Float64
			p.TotalCredits = &c
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(programs) {
	case 0:
		return nil, ErrProgramNotFound
	case 1:
		return programs[0], nil
	default:
		return nil, ErrProgramAmbiguous
	}
}

func (s *SQLAcademicStore) YearsForProgram(programID string) ([]int, error) {
	// program_id is a prefix of program_course_key; that prefix test is the
	// only join between programs and per-student rows.
	query := `SELECT DISTINCT EXTRACT(YEAR FROM semester_start_date)::int AS year
			  FROM student_marks_summary
			  WHERE program_course_key LIKE $1 || '%'
			  ORDER BY year`

	rows, err := s.DB.Query(query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

func (s *SQLAcademicStore) CoursesForProgramYear(programID string, year int) ([]string, error) {
	query := `SELECT DISTINCT course_code FROM student_marks_summary
			  WHERE program_course_key LIKE $1 || '%'
			  AND EXTRACT(YEAR FROM semester_start_date) = $2`

	rows, err := s.DB.Query(query, programID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []string
	for rows.Next() {
		var course string
		if err := rows.Scan(&course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (s *SQLAcademicStore) ComponentNames(programID, courseCode string) ([]string, error) {
	query := `SELECT DISTINCT evaluation_id_name FROM course_evaluation_component
			  WHERE course_code = $1 AND program_id = $2`

	rows, err := s.DB.Query(query, courseCode, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLAcademicStore) ComponentsByNames(programID, courseCode string, names []string) ([]models.EvaluationComponent, error) {
	query := `SELECT program_id, evaluation_id, evaluation_id_name, group_id, course_code,
			  maximum_marks, weightage, component_full_name
			  FROM course_evaluation_component
			  WHERE course_code = $1 AND program_id = $2 AND evaluation_id_name = ANY($3)`

	return s.queryComponents(query, courseCode, programID, pq.Array(names))
}

func (s *SQLAcademicStore) ComponentsForCourse(programID, courseCode string) ([]models.EvaluationComponent, error) {
	query := `SELECT program_id, evaluation_id, evaluation_id_name, group_id, course_code,
			  maximum_marks, weightage, component_full_name
			  FROM course_evaluation_component
			  WHERE course_code = $1 AND program_id = $2`

	return s.queryComponents(query, courseCode, programID)
}

func (s *SQLAcademicStore) queryComponents(query string, args ...interface{}) ([]models.EvaluationComponent, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []models.EvaluationComponent
	for rows.Next() {
		var c models.EvaluationComponent
		err := rows.Scan(&c.ProgramID, &c.EvaluationID, &c.EvaluationIDName, &c.GroupID,
			&c.CourseCode, &c.MaximumMarks, &c.Weightage, &c.ComponentFullName)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, rows.Err()
}

func (s *SQLAcademicStore) AverageMarks(programID, courseCode, evaluationID string) (float64, error) {
	// AVG skips NULL marks; COALESCE turns the no-rows NULL into 0.
	query := `SELECT COALESCE(AVG(marks), 0) FROM student_marks
			  WHERE evaluation_id = $1 AND course_code = $2
			  AND program_course_key LIKE $3 || '%'`

	var avg float64
	err := s.DB.QueryRow(query, evaluationID, courseCode, programID).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg, nil
}

func (s *SQLAcademicStore) GradeDistribution(programID, courseCode string, year int) ([]models.GradeCount, error) {
	query := `SELECT internal_grade, COUNT(roll_number) FROM student_marks_summary
			  WHERE course_code = $1
			  AND EXTRACT(YEAR FROM semester_start_date) = $2
			  AND program_course_key LIKE $3 || '%'
			  AND internal_grade IS NOT NULL
			  GROUP BY internal_grade`

	rows, err := s.DB.Query(query, courseCode, year, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.GradeCount
	for rows.Next() {
		var gc models.GradeCount
		if err := rows.Scan(&gc.Grade, &gc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, gc)
	}
	return counts, rows.Err()
}

func (s *SQLAcademicStore) RollNumbers(programID, courseCode string, evaluationIDs []string) ([]string, error) {
	query := `SELECT DISTINCT roll_number FROM student_marks
			  WHERE evaluation_id = ANY($1) AND course_code = $2
			  AND program_course_key LIKE $3 || '%'
			  ORDER BY roll_number`

	rows, err := s.DB.Query(query, pq.Array(evaluationIDs), courseCode, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rolls []string
	for rows.Next() {
		var roll string
		if err := rows.Scan(&roll); err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}
	return rolls, rows.Err()
}

func (s *SQLAcademicStore) MarksByRoll(programID, courseCode, evaluationID string) (map[string]float64, error) {
	query := `SELECT roll_number, marks FROM student_marks
			  WHERE evaluation_id = $1 AND course_code = $2
			  AND program_course_key LIKE $3 || '%'
			  AND marks IS NOT NULL`

	rows, err := s.DB.Query(query, evaluationID, courseCode, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marks := make(map[string]float64)
	for rows.Next() {
		var roll string
		var m float64
		if err := rows.Scan(&roll, &m); err != nil {
			return nil, err
		}
		marks[roll] = m
	}
	return marks, rows.Err()
}

func (s *SQLAcademicStore) SummariesInScope(programID, courseCode string, year int) ([]models.StudentMarkSummary, error) {
	query := `SELECT roll_number, program_course_key, course_code,
			  semester_start_date, semester_end_date,
			  total_internal, total_external, total_marks,
			  internal_grade, external_grade, final_grade_point, earned_credits
			  FROM student_marks_summary
			  WHERE course_code = $1
			  AND EXTRACT(YEAR FROM semester_start_date) = $2
			  AND program_course_key LIKE $3 || '%'`

	rows, err := s.DB.Query(query, courseCode, year, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.StudentMarkSummary
	for rows.Next() {
		var sm models.StudentMarkSummary
		var totalInternal, totalExternal, totalMarks sql.NullInt64
		var internalGrade, externalGrade sql.NullString
		var finalGradePoint, earnedCredits sql.NullFloat64
		err := rows.Scan(&sm.RollNumber, &sm.ProgramCourseKey, &sm.CourseCode,
			&sm.SemesterStartDate, &sm.SemesterEndDate,
			&totalInternal, &totalExternal, &totalMarks,
			&internalGrade, &externalGrade, &finalGradePoint, &earnedCredits)
		if err != nil {
			return nil, err
		}
		if totalInternal.Valid {
			n := int(totalInternal.Int64)
			sm.TotalInternal = &n
		}
		if totalExternal.Valid {
			n := int(totalExternal.Int64)
			sm.TotalExternal = &n
		}
		if totalMarks.Valid {
			n := int(totalMarks.Int64)
			sm.TotalMarks = &n
		}
		if internalGrade.Valid {
			g := internalGrade.String
			sm.InternalGrade = &g
		}
		if externalGrade.Valid {
			g := externalGrade.String
			sm.ExternalGrade = &g
		}
		if finalGradePoint.Valid {
			f := finalGradePoint.Float64
			sm.FinalGradePoint = &f
		}
		if earnedCredits.Valid {
			c := earnedCredits.Float64
			sm.EarnedCredits = &c
		}
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}

func (s *SQLAcademicStore) MarksInScope(programID, courseCode string, year int) ([]models.StudentMark, error) {
	query := `SELECT roll_number, program_course_key, evaluation_id, course_code,
			  semester_start_date, semester_end_date, marks, grades, pass_fail
			  FROM student_marks
			  WHERE course_code = $1
			  AND EXTRACT(YEAR FROM semester_start_date) = $2
			  AND program_course_key LIKE $3 || '%'`

	rows, err := s.DB.Query(query, courseCode, year, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []models.StudentMark
	for rows.Next() {
		var m models.StudentMark
		var score sql.NullFloat64
		var grades, passFail sql.NullString
		err := rows.Scan(&m.RollNumber, &m.ProgramCourseKey, &m.EvaluationID, &m.CourseCode,
			&m.SemesterStartDate, &m.SemesterEndDate, &score, &grades, &passFail)
		if err != nil {
			return nil, err
		}
		if score.Valid {
			v := score.Float64
			m.Marks = &v
		}
		if grades.Valid {
			g := grades.String
			m.Grades = &g
		}
		if passFail.Valid {
			pf := passFail.String
			m.PassFail = &pf
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

func (s *SQLAcademicStore) CountSummaries(programID, courseCode string, year int) (int, error) {
	query := `SELECT COUNT(*) FROM student_marks_summary
			  WHERE course_code = $1
			  AND EXTRACT(YEAR FROM semester_start_date) = $2
			  AND program_course_key LIKE $3 || '%'`

	var count int
	err := s.DB.QueryRow(query, courseCode, year, programID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
