package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/grading"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD GRADE COMMAND
// Выставление оценки зачисленному студенту. Запись только добавляется,
// уведомления не рассылаются.
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeCommand содержит данные для выставления оценки.
type RecordGradeCommand struct {
	// CourseID - ID курса.
	CourseID string

	// StudentID - ID студента.
	StudentID string

	// Grade - значение оценки.
	Grade float64

	// Weight - вес оценки. nil означает вес по умолчанию (1.0).
	Weight *float64
}

// Validate проверяет команду.
func (c RecordGradeCommand) Validate() error {
	if c.CourseID == "" {
		return errors.New("record_grade: course_id is required")
	}
	if c.StudentID == "" {
		return errors.New("record_grade: student_id is required")
	}
	if c.Weight != nil && *c.Weight < 0 {
		return errors.New("record_grade: weight must be non-negative")
	}
	return nil
}

// EffectiveWeight возвращает вес оценки с учётом значения по умолчанию.
func (c RecordGradeCommand) EffectiveWeight() float64 {
	if c.Weight == nil {
		return grading.DefaultWeight
	}
	return *c.Weight
}

// RecordGradeResult содержит результат выставления оценки.
type RecordGradeResult struct {
	// CourseID - ID курса.
	CourseID string

	// StudentID - ID студента.
	StudentID string

	// Grade - выставленная оценка.
	Grade float64

	// Weight - фактический вес.
	Weight float64

	// GradeCount - количество оценок студента после выставления.
	GradeCount int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeHandler обрабатывает RecordGradeCommand.
type RecordGradeHandler struct {
	courses course.Repository
	bus     shared.EventPublisher
}

// NewRecordGradeHandler создаёт новый RecordGradeHandler.
func NewRecordGradeHandler(courses course.Repository, bus shared.EventPublisher) *RecordGradeHandler {
	return &RecordGradeHandler{
		courses: courses,
		bus:     bus,
	}
}

// Handle выполняет выставление оценки.
// Возвращает shared.ErrNotEnrolled, если студент не зачислен на курс.
func (h *RecordGradeHandler) Handle(ctx context.Context, cmd RecordGradeCommand) (*RecordGradeResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("record_grade: validation failed: %w", err)
	}

	c, err := h.courses.GetByID(ctx, cmd.CourseID)
	if err != nil {
		return nil, err
	}

	weight := cmd.EffectiveWeight()
	if err := c.AddGrade(cmd.StudentID, cmd.Grade, weight); err != nil {
		return nil, err
	}

	grades, err := c.Grades(cmd.StudentID)
	if err != nil {
		return nil, fmt.Errorf("record_grade: %w", err)
	}

	if h.bus != nil {
		_ = h.bus.Publish(shared.NewGradeRecordedEvent(c.ID, cmd.StudentID, cmd.Grade, weight))
	}

	return &RecordGradeResult{
		CourseID:   c.ID,
		StudentID:  cmd.StudentID,
		Grade:      cmd.Grade,
		Weight:     weight,
		GradeCount: len(grades),
	}, nil
}
