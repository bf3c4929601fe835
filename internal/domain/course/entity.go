package course

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/academy-hub/academy-record-keeper/internal/domain/grading"
	"github.com/academy-hub/academy-record-keeper/internal/domain/notification"
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: COURSE
// Фасад зачисления и оценивания: объединяет состав, политику агрегации
// и хаб уведомлений.
// ══════════════════════════════════════════════════════════════════════════════

// Course - курс, принадлежащий преподавателю.
// Все составные мутации (зачисление, оценка, уведомление) защищены
// мьютексом: чередование не должно наблюдать полусозданную запись состава.
type Course struct {
	mu sync.Mutex

	// ID - внутренний уникальный идентификатор (UUID в строковом формате).
	ID string

	// Name - название курса.
	Name string

	// description - описание курса (изменяемое).
	description string

	// TeacherID - ID преподавателя-владельца.
	// Устанавливается при создании и далее неизменен.
	TeacherID string

	// policy - текущая политика агрегации итоговой оценки.
	policy grading.Policy

	// roster - состав курса.
	roster *Roster

	// hub - хаб уведомлений записанных студентов.
	hub *notification.Hub

	// students - записанные студенты по ID, для выдачи состава
	// в порядке зачисления.
	students map[string]*user.User

	// CreatedAt - время создания.
	CreatedAt time.Time

	// UpdatedAt - время последнего обновления.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidCourseName - невалидное название курса.
	ErrInvalidCourseName = errors.New("invalid course name: must be 1-100 chars")

	// ErrTeacherRequired - не указан преподаватель-владелец.
	ErrTeacherRequired = errors.New("course teacher id is required")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewCourseParams содержит параметры для создания нового курса.
type NewCourseParams struct {
	ID          string
	Name        string
	Description string
	TeacherID   string

	// Policy - политика агрегации; пустое значение означает политику
	// по умолчанию (среднее без весов).
	Policy grading.Policy
}

// NewCourse создаёт новый курс с валидацией полей.
// Принадлежность TeacherID зарегистрированному преподавателю
// не проверяется - это ответственность вызывающего.
func NewCourse(params NewCourseParams) (*Course, error) {
	if params.ID == "" {
		return nil, errors.New("course id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidCourseName
	}

	if params.TeacherID == "" {
		return nil, ErrTeacherRequired
	}

	policy := params.Policy
	if policy == "" {
		policy = grading.DefaultPolicy
	}
	if !policy.IsValid() {
		return nil, grading.ErrUnknownPolicy
	}

	now := time.Now().UTC()

	return &Course{
		ID:          params.ID,
		Name:        name,
		description: strings.TrimSpace(params.Description),
		TeacherID:   params.TeacherID,
		policy:      policy,
		roster:      NewRoster(),
		hub:         notification.NewHub(),
		students:    make(map[string]*user.User),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Business Logic)
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudent зачисляет студента на курс как единую атомарную операцию:
// запись в состав, подписка на уведомления, обратная ссылка у студента
// и подтверждение с названием курса. Подтверждение адресовано лично
// новому студенту - остальные подписчики его не получают. Единственный
// шаг, который может отказать - запись в состав - выполняется первым,
// поэтому частично выполненных зачислений не бывает.
func (c *Course) RegisterStudent(s *user.User) error {
	if s == nil {
		return shared.NewDomainError("course", "Enroll", shared.ErrInvalidInput, "student is required")
	}
	if !s.Role.CanEnroll() {
		return shared.ErrNotAStudent
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.roster.Enroll(s.ID); err != nil {
		return err
	}

	c.hub.Subscribe(s.ID)
	if err := s.LinkCourse(c.ID); err != nil {
		// Состав и обратная ссылка рассинхронизированы только если курс
		// уже был в наборе студента без записи в составе - нарушение
		// инварианта снаружи. Поглощать его молча нельзя.
		return shared.WrapError("course", "Enroll", shared.ErrInvalidEntity, "roster and enrolled-set are inconsistent", err)
	}
	c.students[s.ID] = s

	c.hub.Deliver(s.ID, fmt.Sprintf("You have been enrolled in course %q.", c.Name))
	c.UpdatedAt = time.Now().UTC()

	return nil
}

// AddGrade добавляет оценку студенту. Уведомления не рассылаются.
// Возвращает shared.ErrNotEnrolled для незачисленного студента.
func (c *Course) AddGrade(studentID string, grade, weight float64) error {
	entry, err := grading.NewEntry(grade, weight)
	if err != nil {
		return shared.WrapError("course", "AddGrade", shared.ErrNegativeValue, "invalid grade entry", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.roster.AddGrade(studentID, entry); err != nil {
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}

// FinalGrade вычисляет итоговую оценку студента по текущей политике курса.
func (c *Course) FinalGrade(studentID string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.roster.FinalGrade(studentID, c.policy)
}

// Grades возвращает копию последовательности оценок студента.
func (c *Course) Grades(studentID string) ([]grading.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.roster.Entry(studentID)
	if err != nil {
		return nil, err
	}
	return entry.Grades(), nil
}

// SetDescription обновляет описание курса и рассылает уведомление
// всем текущим подписчикам. Возвращает количество доставленных копий.
func (c *Course) SetDescription(description string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.description = strings.TrimSpace(description)
	c.UpdatedAt = time.Now().UTC()

	return c.hub.Notify(fmt.Sprintf("Course %q has been updated.", c.Name))
}

// Description возвращает текущее описание курса.
func (c *Course) Description() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.description
}

// SetPolicy меняет политику агрегации итоговой оценки.
func (c *Course) SetPolicy(policy grading.Policy) error {
	if !policy.IsValid() {
		return grading.ErrUnknownPolicy
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.policy = policy
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Policy возвращает текущую политику агрегации.
func (c *Course) Policy() grading.Policy {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.policy
}

// EnrolledStudents возвращает записанных студентов в порядке зачисления.
func (c *Course) EnrolledStudents() []*user.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	students := make([]*user.User, 0, c.roster.Size())
	for _, id := range c.roster.StudentIDs() {
		if s, ok := c.students[id]; ok {
			students = append(students, s)
		}
	}
	return students
}

// IsEnrolled проверяет, зачислен ли студент на курс.
func (c *Course) IsEnrolled(studentID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.roster.IsEnrolled(studentID)
}

// EnrolledCount возвращает количество зачисленных студентов.
func (c *Course) EnrolledCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.roster.Size()
}

// Inbox возвращает копию входящего ящика уведомлений студента.
func (c *Course) Inbox(studentID string) []notification.Message {
	return c.hub.Inbox(studentID)
}

// UnsubscribeNotifications отписывает студента от уведомлений курса.
// Запись в составе при этом сохраняется: отписка влияет только на доставку.
func (c *Course) UnsubscribeNotifications(studentID string) {
	c.hub.Unsubscribe(studentID)
}

// SubscriberCount возвращает количество подписчиков уведомлений.
func (c *Course) SubscriberCount() int {
	return c.hub.SubscriberCount()
}

// String возвращает строковое представление курса для логирования.
func (c *Course) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fmt.Sprintf(
		"Course{ID: %s, Name: %s, Teacher: %s, Policy: %s, Enrolled: %d}",
		c.ID, c.Name, c.TeacherID, c.policy, c.roster.Size(),
	)
}
