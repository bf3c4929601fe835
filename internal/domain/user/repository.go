package user

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Этот интерфейс определяет контракт реестра пользователей.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции реестра пользователей.
type Repository interface {
	// Create регистрирует нового пользователя.
	// Возвращает shared.ErrDuplicateUsername, если имя учётной записи занято.
	Create(ctx context.Context, user *User) error

	// GetByID возвращает пользователя по внутреннему ID.
	// Возвращает shared.ErrUserNotFound, если пользователь не найден.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByUsername возвращает пользователя по имени учётной записи
	// (точное совпадение, с учётом регистра).
	// Возвращает shared.ErrUserNotFound, если пользователь не найден.
	GetByUsername(ctx context.Context, username Username) (*User, error)

	// Update обновляет данные пользователя.
	// Возвращает shared.ErrUserNotFound, если пользователь не найден.
	Update(ctx context.Context, user *User) error

	// GetAll возвращает всех пользователей в порядке регистрации.
	GetAll(ctx context.Context) ([]*User, error)

	// GetByRole возвращает пользователей с указанной ролью в порядке регистрации.
	GetByRole(ctx context.Context, role Role) ([]*User, error)

	// Count возвращает общее количество пользователей.
	Count(ctx context.Context) (int, error)

	// ExistsByUsername проверяет, занято ли имя учётной записи.
	ExistsByUsername(ctx context.Context, username Username) (bool, error)
}
