package memory

import (
	"context"
	"sync"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// CourseRepository - внутрипроцессный реестр курсов.
// Порядок создания сохраняется: он значим для отображения списков.
// Поиск курсов преподавателя - линейный фильтр по реестру; при текущем
// масштабе обратный индекс не нужен.
type CourseRepository struct {
	mu sync.RWMutex

	// byID - курсы по ID.
	byID map[string]*course.Course

	// order - ID курсов в порядке создания.
	order []string
}

// NewCourseRepository создаёт пустой реестр курсов.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		byID:  make(map[string]*course.Course),
		order: make([]string, 0),
	}
}

// Create добавляет курс в реестр.
func (r *CourseRepository) Create(_ context.Context, c *course.Course) error {
	if c == nil {
		return shared.NewDomainError("directory", "CreateCourse", shared.ErrInvalidInput, "course is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; ok {
		return shared.NewDomainError("directory", "CreateCourse", shared.ErrAlreadyExists, "course id already registered")
	}

	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)

	return nil
}

// GetByID возвращает курс по ID.
func (r *CourseRepository) GetByID(_ context.Context, id string) (*course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrCourseNotFound
	}
	return c, nil
}

// GetAll возвращает все курсы в порядке создания.
func (r *CourseRepository) GetAll(_ context.Context) ([]*course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]*course.Course, 0, len(r.order))
	for _, id := range r.order {
		courses = append(courses, r.byID[id])
	}
	return courses, nil
}

// Count возвращает количество курсов.
func (r *CourseRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order), nil
}
