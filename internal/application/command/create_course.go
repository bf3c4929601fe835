package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/grading"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COURSE COMMAND
// Создание курса всегда успешно при валидных полях: принадлежность
// TeacherID зарегистрированному преподавателю не проверяется,
// это ответственность вызывающего.
// ══════════════════════════════════════════════════════════════════════════════

// CreateCourseCommand содержит данные для создания курса.
type CreateCourseCommand struct {
	// Name - название курса.
	Name string

	// Description - описание курса.
	Description string

	// TeacherID - ID преподавателя-владельца.
	TeacherID string

	// Policy - политика агрегации; пустая строка означает
	// политику по умолчанию из конфигурации.
	Policy string
}

// Validate проверяет команду.
func (c CreateCourseCommand) Validate() error {
	if c.Name == "" {
		return errors.New("create_course: name is required")
	}
	if c.TeacherID == "" {
		return errors.New("create_course: teacher_id is required")
	}
	if c.Policy != "" {
		if _, err := grading.ParsePolicy(c.Policy); err != nil {
			return fmt.Errorf("create_course: %w", err)
		}
	}
	return nil
}

// CreateCourseResult содержит результат создания курса.
type CreateCourseResult struct {
	// Course - созданный курс.
	Course *course.Course
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// CreateCourseHandler обрабатывает CreateCourseCommand.
type CreateCourseHandler struct {
	courses       course.Repository
	bus           shared.EventPublisher
	defaultPolicy grading.Policy
}

// NewCreateCourseHandler создаёт новый CreateCourseHandler.
func NewCreateCourseHandler(courses course.Repository, bus shared.EventPublisher, defaultPolicy grading.Policy) *CreateCourseHandler {
	if !defaultPolicy.IsValid() {
		defaultPolicy = grading.DefaultPolicy
	}
	return &CreateCourseHandler{
		courses:       courses,
		bus:           bus,
		defaultPolicy: defaultPolicy,
	}
}

// Handle выполняет создание курса.
func (h *CreateCourseHandler) Handle(ctx context.Context, cmd CreateCourseCommand) (*CreateCourseResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("create_course: validation failed: %w", err)
	}

	policy := h.defaultPolicy
	if cmd.Policy != "" {
		policy, _ = grading.ParsePolicy(cmd.Policy)
	}

	c, err := course.NewCourse(course.NewCourseParams{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Description: cmd.Description,
		TeacherID:   cmd.TeacherID,
		Policy:      policy,
	})
	if err != nil {
		return nil, fmt.Errorf("create_course: %w", err)
	}

	if err := h.courses.Create(ctx, c); err != nil {
		return nil, err
	}

	if h.bus != nil {
		_ = h.bus.Publish(shared.NewCourseCreatedEvent(c.ID, c.Name, c.TeacherID))
	}

	return &CreateCourseResult{Course: c}, nil
}
