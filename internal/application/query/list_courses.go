package query

import (
	"context"
	"errors"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST COURSES QUERIES
// Список всех курсов и курсы преподавателя. Курсы преподавателя -
// линейный фильтр по реестру, а не хранимый индекс: при текущем
// масштабе этого достаточно.
// ══════════════════════════════════════════════════════════════════════════════

// CourseDTO - представление курса в списке.
type CourseDTO struct {
	// ID - внутренний ID.
	ID string `json:"id"`

	// Name - название курса.
	Name string `json:"name"`

	// Description - описание курса.
	Description string `json:"description"`

	// TeacherID - ID преподавателя-владельца.
	TeacherID string `json:"teacher_id"`

	// Policy - политика агрегации.
	Policy string `json:"policy"`

	// EnrolledCount - количество зачисленных студентов.
	EnrolledCount int `json:"enrolled_count"`
}

func toCourseDTO(c *course.Course) CourseDTO {
	return CourseDTO{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description(),
		TeacherID:     c.TeacherID,
		Policy:        c.Policy().String(),
		EnrolledCount: c.EnrolledCount(),
	}
}

// ListCoursesHandler возвращает все курсы в порядке создания.
type ListCoursesHandler struct {
	courses course.Repository
}

// NewListCoursesHandler создаёт новый ListCoursesHandler.
func NewListCoursesHandler(courses course.Repository) *ListCoursesHandler {
	return &ListCoursesHandler{courses: courses}
}

// Handle выполняет запрос.
func (h *ListCoursesHandler) Handle(ctx context.Context) ([]CourseDTO, error) {
	all, err := h.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CourseDTO, 0, len(all))
	for _, c := range all {
		dtos = append(dtos, toCourseDTO(c))
	}
	return dtos, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSES TAUGHT BY
// ══════════════════════════════════════════════════════════════════════════════

// CoursesTaughtByQuery содержит параметры запроса курсов преподавателя.
type CoursesTaughtByQuery struct {
	// TeacherID - ID преподавателя.
	TeacherID string
}

// Validate проверяет корректность параметров запроса.
func (q CoursesTaughtByQuery) Validate() error {
	if q.TeacherID == "" {
		return errors.New("courses_taught_by: teacher_id is required")
	}
	return nil
}

// CoursesTaughtByHandler обрабатывает CoursesTaughtByQuery.
type CoursesTaughtByHandler struct {
	courses course.Repository
}

// NewCoursesTaughtByHandler создаёт новый CoursesTaughtByHandler.
func NewCoursesTaughtByHandler(courses course.Repository) *CoursesTaughtByHandler {
	return &CoursesTaughtByHandler{courses: courses}
}

// Handle выполняет запрос.
func (h *CoursesTaughtByHandler) Handle(ctx context.Context, q CoursesTaughtByQuery) ([]CourseDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	all, err := h.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CourseDTO, 0)
	for _, c := range all {
		if c.TeacherID == q.TeacherID {
			dtos = append(dtos, toCourseDTO(c))
		}
	}
	return dtos, nil
}
