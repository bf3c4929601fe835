// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER USER COMMAND
// Регистрация нового пользователя в реестре. Уникальность имени учётной
// записи проверяется реестром в момент регистрации.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterUserCommand содержит данные для регистрации пользователя.
type RegisterUserCommand struct {
	// Role - роль нового пользователя (student, teacher, administrator).
	Role string

	// Name - отображаемое имя.
	Name string

	// Username - уникальное имя учётной записи.
	Username string

	// Password - пароль (хранится как есть: проверка подлинности -
	// точное сравнение, не криптографическая операция).
	Password string
}

// Validate проверяет команду.
func (c RegisterUserCommand) Validate() error {
	if c.Name == "" {
		return errors.New("register_user: name is required")
	}
	if c.Username == "" {
		return errors.New("register_user: username is required")
	}
	if c.Password == "" {
		return errors.New("register_user: password is required")
	}
	if _, err := user.ParseRole(c.Role); err != nil {
		return fmt.Errorf("register_user: %w", err)
	}
	return nil
}

// RegisterUserResult содержит результат регистрации.
type RegisterUserResult struct {
	// User - зарегистрированный пользователь.
	User *user.User
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RegisterUserHandler обрабатывает RegisterUserCommand.
type RegisterUserHandler struct {
	users user.Repository
	bus   shared.EventPublisher
}

// NewRegisterUserHandler создаёт новый RegisterUserHandler.
func NewRegisterUserHandler(users user.Repository, bus shared.EventPublisher) *RegisterUserHandler {
	return &RegisterUserHandler{
		users: users,
		bus:   bus,
	}
}

// Handle выполняет регистрацию.
// Возвращает shared.ErrDuplicateUsername, если имя учётной записи занято;
// реестр при этом не изменяется.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("register_user: validation failed: %w", err)
	}

	role, _ := user.ParseRole(cmd.Role)

	u, err := user.NewUser(user.NewUserParams{
		ID:       uuid.NewString(),
		Name:     cmd.Name,
		Username: user.Username(cmd.Username),
		Password: user.Password(cmd.Password),
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("register_user: %w", err)
	}

	if err := h.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if h.bus != nil {
		_ = h.bus.Publish(shared.NewUserRegisteredEvent(u.ID, u.Username.String(), u.Name, u.Role.String()))
	}

	return &RegisterUserResult{User: u}, nil
}
