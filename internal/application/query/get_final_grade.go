package query

import (
	"context"
	"errors"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET FINAL GRADE QUERY
// Итоговая оценка студента по текущей политике курса.
// ══════════════════════════════════════════════════════════════════════════════

// GetFinalGradeQuery содержит параметры запроса итоговой оценки.
type GetFinalGradeQuery struct {
	// CourseID - ID курса.
	CourseID string

	// StudentID - ID студента.
	StudentID string
}

// Validate проверяет корректность параметров запроса.
func (q GetFinalGradeQuery) Validate() error {
	if q.CourseID == "" {
		return errors.New("get_final_grade: course_id is required")
	}
	if q.StudentID == "" {
		return errors.New("get_final_grade: student_id is required")
	}
	return nil
}

// FinalGradeDTO - итоговая оценка с контекстом для отображения.
type FinalGradeDTO struct {
	// CourseID - ID курса.
	CourseID string `json:"course_id"`

	// CourseName - название курса.
	CourseName string `json:"course_name"`

	// StudentID - ID студента.
	StudentID string `json:"student_id"`

	// FinalGrade - итоговая оценка. Для студента без оценок равна 0 -
	// отображается как "0.00", это не ошибка.
	FinalGrade float64 `json:"final_grade"`

	// Policy - политика агрегации, по которой вычислен итог.
	Policy string `json:"policy"`

	// GradeCount - количество выставленных оценок.
	GradeCount int `json:"grade_count"`
}

// GetFinalGradeHandler обрабатывает GetFinalGradeQuery.
type GetFinalGradeHandler struct {
	courses course.Repository
}

// NewGetFinalGradeHandler создаёт новый GetFinalGradeHandler.
func NewGetFinalGradeHandler(courses course.Repository) *GetFinalGradeHandler {
	return &GetFinalGradeHandler{courses: courses}
}

// Handle выполняет запрос.
// Возвращает shared.ErrNotEnrolled, если студент не зачислен на курс.
func (h *GetFinalGradeHandler) Handle(ctx context.Context, q GetFinalGradeQuery) (*FinalGradeDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	c, err := h.courses.GetByID(ctx, q.CourseID)
	if err != nil {
		return nil, err
	}

	final, err := c.FinalGrade(q.StudentID)
	if err != nil {
		return nil, err
	}

	grades, err := c.Grades(q.StudentID)
	if err != nil {
		return nil, err
	}

	return &FinalGradeDTO{
		CourseID:   c.ID,
		CourseName: c.Name,
		StudentID:  q.StudentID,
		FinalGrade: final,
		Policy:     c.Policy().String(),
		GradeCount: len(grades),
	}, nil
}
