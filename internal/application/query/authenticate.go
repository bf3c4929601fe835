// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATE QUERY
// Вход по паре (username, password). Успех только при точном совпадении
// обоих полей; любое расхождение даёт одну и ту же ошибку
// shared.ErrInvalidCredentials, чтобы не раскрывать, какое поле неверно.
// ══════════════════════════════════════════════════════════════════════════════

// AuthenticateQuery содержит учётные данные для входа.
type AuthenticateQuery struct {
	// Username - имя учётной записи.
	Username string

	// Password - пароль.
	Password string
}

// Validate проверяет корректность параметров запроса.
func (q AuthenticateQuery) Validate() error {
	if q.Username == "" {
		return errors.New("authenticate: username is required")
	}
	if q.Password == "" {
		return errors.New("authenticate: password is required")
	}
	return nil
}

// AuthenticateResult содержит результат входа.
type AuthenticateResult struct {
	// User - аутентифицированный пользователь.
	User *user.User
}

// AuthenticateHandler обрабатывает AuthenticateQuery.
type AuthenticateHandler struct {
	users user.Repository
}

// NewAuthenticateHandler создаёт новый AuthenticateHandler.
func NewAuthenticateHandler(users user.Repository) *AuthenticateHandler {
	return &AuthenticateHandler{users: users}
}

// Handle выполняет вход.
func (h *AuthenticateHandler) Handle(ctx context.Context, q AuthenticateQuery) (*AuthenticateResult, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	u, err := h.users.GetByUsername(ctx, user.Username(q.Username))
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	if !u.Authenticate(user.Username(q.Username), user.Password(q.Password)) {
		return nil, shared.ErrInvalidCredentials
	}

	return &AuthenticateResult{User: u}, nil
}
