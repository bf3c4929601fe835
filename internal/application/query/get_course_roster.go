package query

import (
	"context"
	"errors"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET COURSE ROSTER QUERY
// Состав курса в порядке зачисления - представление для преподавателя.
// ══════════════════════════════════════════════════════════════════════════════

// GetCourseRosterQuery содержит параметры запроса состава курса.
type GetCourseRosterQuery struct {
	// CourseID - ID курса.
	CourseID string
}

// Validate проверяет корректность параметров запроса.
func (q GetCourseRosterQuery) Validate() error {
	if q.CourseID == "" {
		return errors.New("get_course_roster: course_id is required")
	}
	return nil
}

// RosterEntryDTO - одна строка состава курса.
type RosterEntryDTO struct {
	// StudentID - ID студента.
	StudentID string `json:"student_id"`

	// Username - имя учётной записи студента.
	Username string `json:"username"`

	// Name - отображаемое имя студента.
	Name string `json:"name"`

	// GradeCount - количество выставленных оценок.
	GradeCount int `json:"grade_count"`

	// FinalGrade - итоговая оценка по текущей политике курса.
	FinalGrade float64 `json:"final_grade"`
}

// CourseRosterDTO - состав курса.
type CourseRosterDTO struct {
	// CourseID - ID курса.
	CourseID string `json:"course_id"`

	// CourseName - название курса.
	CourseName string `json:"course_name"`

	// Policy - текущая политика агрегации.
	Policy string `json:"policy"`

	// Entries - строки состава в порядке зачисления.
	Entries []RosterEntryDTO `json:"entries"`
}

// GetCourseRosterHandler обрабатывает GetCourseRosterQuery.
type GetCourseRosterHandler struct {
	courses course.Repository
}

// NewGetCourseRosterHandler создаёт новый GetCourseRosterHandler.
func NewGetCourseRosterHandler(courses course.Repository) *GetCourseRosterHandler {
	return &GetCourseRosterHandler{courses: courses}
}

// Handle выполняет запрос.
func (h *GetCourseRosterHandler) Handle(ctx context.Context, q GetCourseRosterQuery) (*CourseRosterDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	c, err := h.courses.GetByID(ctx, q.CourseID)
	if err != nil {
		return nil, err
	}

	students := c.EnrolledStudents()
	entries := make([]RosterEntryDTO, 0, len(students))
	for _, s := range students {
		grades, err := c.Grades(s.ID)
		if err != nil {
			return nil, err
		}
		final, err := c.FinalGrade(s.ID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, RosterEntryDTO{
			StudentID:  s.ID,
			Username:   s.Username.String(),
			Name:       s.Name,
			GradeCount: len(grades),
			FinalGrade: final,
		})
	}

	return &CourseRosterDTO{
		CourseID:   c.ID,
		CourseName: c.Name,
		Policy:     c.Policy().String(),
		Entries:    entries,
	}, nil
}
