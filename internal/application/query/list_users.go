package query

import (
	"context"
	"errors"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST USERS QUERY
// Полный список пользователей. Доступен только администратору - это
// единственная возможность, которую роль добавляет.
// ══════════════════════════════════════════════════════════════════════════════

// ListUsersQuery содержит параметры запроса списка пользователей.
type ListUsersQuery struct {
	// RequesterID - ID пользователя, запрашивающего список.
	RequesterID string
}

// Validate проверяет корректность параметров запроса.
func (q ListUsersQuery) Validate() error {
	if q.RequesterID == "" {
		return errors.New("list_users: requester_id is required")
	}
	return nil
}

// UserDTO - представление пользователя в списке. Пароль не включается.
type UserDTO struct {
	// ID - внутренний ID.
	ID string `json:"id"`

	// Name - отображаемое имя.
	Name string `json:"name"`

	// Username - имя учётной записи.
	Username string `json:"username"`

	// Role - роль.
	Role string `json:"role"`

	// EnrolledCourses - количество курсов (для студентов).
	EnrolledCourses int `json:"enrolled_courses"`
}

// ListUsersHandler обрабатывает ListUsersQuery.
type ListUsersHandler struct {
	users user.Repository
}

// NewListUsersHandler создаёт новый ListUsersHandler.
func NewListUsersHandler(users user.Repository) *ListUsersHandler {
	return &ListUsersHandler{users: users}
}

// Handle выполняет запрос.
// Возвращает shared.ErrNotAdministrator, если запрашивающий не администратор.
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) ([]UserDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	requester, err := h.users.GetByID(ctx, q.RequesterID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.CanViewAllUsers() {
		return nil, shared.ErrNotAdministrator
	}

	all, err := h.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]UserDTO, 0, len(all))
	for _, u := range all {
		dtos = append(dtos, UserDTO{
			ID:              u.ID,
			Name:            u.Name,
			Username:        u.Username.String(),
			Role:            u.Role.String(),
			EnrolledCourses: u.EnrolledCourseCount(),
		})
	}

	return dtos, nil
}
