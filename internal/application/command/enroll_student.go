package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// Зачисление студента на курс. Сам курс выполняет атомарную
// четырёхшаговую операцию: состав, подписка, обратная ссылка,
// подтверждающее уведомление.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand содержит данные для зачисления.
type EnrollStudentCommand struct {
	// CourseID - ID курса.
	CourseID string

	// StudentID - ID студента.
	StudentID string
}

// Validate проверяет команду.
func (c EnrollStudentCommand) Validate() error {
	if c.CourseID == "" {
		return errors.New("enroll_student: course_id is required")
	}
	if c.StudentID == "" {
		return errors.New("enroll_student: student_id is required")
	}
	return nil
}

// EnrollStudentResult содержит результат зачисления.
type EnrollStudentResult struct {
	// Course - курс после зачисления.
	Course *course.Course

	// Student - студент после зачисления.
	Student *user.User
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentHandler обрабатывает EnrollStudentCommand.
type EnrollStudentHandler struct {
	courses course.Repository
	users   user.Repository
	bus     shared.EventPublisher
}

// NewEnrollStudentHandler создаёт новый EnrollStudentHandler.
func NewEnrollStudentHandler(courses course.Repository, users user.Repository, bus shared.EventPublisher) *EnrollStudentHandler {
	return &EnrollStudentHandler{
		courses: courses,
		users:   users,
		bus:     bus,
	}
}

// Handle выполняет зачисление.
// Возвращает shared.ErrAlreadyEnrolled при повторном зачислении
// и shared.ErrNotAStudent, если роль пользователя не позволяет записываться.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("enroll_student: validation failed: %w", err)
	}

	c, err := h.courses.GetByID(ctx, cmd.CourseID)
	if err != nil {
		return nil, err
	}

	s, err := h.users.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	if err := c.RegisterStudent(s); err != nil {
		return nil, err
	}

	if err := h.users.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("enroll_student: failed to save student: %w", err)
	}

	if h.bus != nil {
		_ = h.bus.Publish(shared.NewStudentEnrolledEvent(c.ID, c.Name, s.ID, s.Username.String()))
	}

	return &EnrollStudentResult{Course: c, Student: s}, nil
}
