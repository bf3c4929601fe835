package query

import (
	"context"
	"errors"
	"time"

	"github.com/academy-hub/academy-record-keeper/internal/domain/course"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET INBOX QUERY
// Входящие уведомления студента по курсу, в порядке доставки.
// ══════════════════════════════════════════════════════════════════════════════

// GetInboxQuery содержит параметры запроса входящих уведомлений.
type GetInboxQuery struct {
	// CourseID - ID курса.
	CourseID string

	// StudentID - ID студента.
	StudentID string
}

// Validate проверяет корректность параметров запроса.
func (q GetInboxQuery) Validate() error {
	if q.CourseID == "" {
		return errors.New("get_inbox: course_id is required")
	}
	if q.StudentID == "" {
		return errors.New("get_inbox: student_id is required")
	}
	return nil
}

// MessageDTO - одно уведомление.
type MessageDTO struct {
	// ID - идентификатор сообщения.
	ID string `json:"id"`

	// Text - текст уведомления.
	Text string `json:"text"`

	// SentAt - время отправки.
	SentAt time.Time `json:"sent_at"`
}

// GetInboxHandler обрабатывает GetInboxQuery.
type GetInboxHandler struct {
	courses course.Repository
}

// NewGetInboxHandler создаёт новый GetInboxHandler.
func NewGetInboxHandler(courses course.Repository) *GetInboxHandler {
	return &GetInboxHandler{courses: courses}
}

// Handle выполняет запрос.
// Возвращает shared.ErrNotEnrolled, если студент не зачислен на курс.
func (h *GetInboxHandler) Handle(ctx context.Context, q GetInboxQuery) ([]MessageDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	c, err := h.courses.GetByID(ctx, q.CourseID)
	if err != nil {
		return nil, err
	}

	if !c.IsEnrolled(q.StudentID) {
		return nil, shared.ErrNotEnrolled
	}

	messages := c.Inbox(q.StudentID)
	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:     m.ID,
			Text:   m.Text,
			SentAt: m.SentAt,
		})
	}
	return dtos, nil
}
