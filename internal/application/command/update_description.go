package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE DESCRIPTION COMMAND
// Обновление описания курса с рассылкой уведомления всем текущим
// подписчикам.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateDescriptionCommand содержит данные для обновления описания.
type UpdateDescriptionCommand struct {
	// CourseID - ID курса.
	CourseID string

	// Description - новое описание.
	Description string
}

// Validate проверяет команду.
func (c UpdateDescriptionCommand) Validate() error {
	if c.CourseID == "" {
		return errors.New("update_description: course_id is required")
	}
	return nil
}

// UpdateDescriptionResult содержит результат обновления.
type UpdateDescriptionResult struct {
	// CourseID - ID курса.
	CourseID string

	// Notified - количество подписчиков, получивших уведомление.
	Notified int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// UpdateDescriptionHandler обрабатывает UpdateDescriptionCommand.
type UpdateDescriptionHandler struct {
	courses course.Repository
	bus     shared.EventPublisher
}

// NewUpdateDescriptionHandler создаёт новый UpdateDescriptionHandler.
func NewUpdateDescriptionHandler(courses course.Repository, bus shared.EventPublisher) *UpdateDescriptionHandler {
	return &UpdateDescriptionHandler{
		courses: courses,
		bus:     bus,
	}
}

// Handle выполняет обновление описания.
func (h *UpdateDescriptionHandler) Handle(ctx context.Context, cmd UpdateDescriptionCommand) (*UpdateDescriptionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("update_description: validation failed: %w", err)
	}

	c, err := h.courses.GetByID(ctx, cmd.CourseID)
	if err != nil {
		return nil, err
	}

	notified := c.SetDescription(cmd.Description)

	if h.bus != nil {
		_ = h.bus.Publish(shared.NewCourseDescriptionUpdatedEvent(c.ID, c.Name, c.Description(), notified))
	}

	return &UpdateDescriptionResult{
		CourseID: c.ID,
		Notified: notified,
	}, nil
}
