// Package memory содержит внутрипроцессные реализации реестров.
// Реестр живёт столько же, сколько процесс: сохранение на диск
// сознательно не предусмотрено, интерфейсы репозиториев позволяют
// добавить его, не трогая домен.
package memory

import (
	"context"
	"sync"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/internal/domain/user"
)

// UserRepository - внутрипроцессный реестр пользователей.
// Инвариант уникальности имени учётной записи обеспечивается здесь,
// в момент регистрации.
type UserRepository struct {
	mu sync.RWMutex

	// byID - пользователи по внутреннему ID.
	byID map[string]*user.User

	// byUsername - индекс по имени учётной записи (точное совпадение).
	byUsername map[user.Username]*user.User

	// order - ID пользователей в порядке регистрации.
	order []string
}

// NewUserRepository создаёт пустой реестр пользователей.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]*user.User),
		byUsername: make(map[user.Username]*user.User),
		order:      make([]string, 0),
	}
}

// Create регистрирует нового пользователя.
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	if u == nil {
		return shared.NewDomainError("directory", "RegisterUser", shared.ErrInvalidInput, "user is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[u.Username]; ok {
		return shared.ErrDuplicateUsername
	}
	if _, ok := r.byID[u.ID]; ok {
		return shared.NewDomainError("directory", "RegisterUser", shared.ErrAlreadyExists, "user id already registered")
	}

	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	r.order = append(r.order, u.ID)

	return nil
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return u, nil
}

// GetByUsername возвращает пользователя по имени учётной записи.
func (r *UserRepository) GetByUsername(_ context.Context, username user.Username) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return u, nil
}

// Update обновляет данные пользователя.
// Реестр хранит указатели, поэтому мутации сущности видны сразу;
// метод существует ради контракта репозитория и проверки существования.
func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return shared.ErrUserNotFound
	}

	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

// GetAll возвращает всех пользователей в порядке регистрации.
func (r *UserRepository) GetAll(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*user.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users, nil
}

// GetByRole возвращает пользователей с указанной ролью в порядке регистрации.
func (r *UserRepository) GetByRole(_ context.Context, role user.Role) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*user.User, 0)
	for _, id := range r.order {
		if u := r.byID[id]; u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

// Count возвращает количество пользователей.
func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order), nil
}

// ExistsByUsername проверяет, занято ли имя учётной записи.
func (r *UserRepository) ExistsByUsername(_ context.Context, username user.Username) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}
