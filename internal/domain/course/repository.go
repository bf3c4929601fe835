package course

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Контракт реестра курсов. Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции реестра курсов.
type Repository interface {
	// Create добавляет курс в реестр.
	// Возвращает shared.ErrAlreadyExists, если курс с таким ID уже есть.
	Create(ctx context.Context, course *Course) error

	// GetByID возвращает курс по ID.
	// Возвращает shared.ErrCourseNotFound, если курс не найден.
	GetByID(ctx context.Context, id string) (*Course, error)

	// GetAll возвращает все курсы в порядке создания.
	// Порядок значим только для отображения.
	GetAll(ctx context.Context) ([]*Course, error)

	// Count возвращает количество курсов.
	Count(ctx context.Context) (int, error)
}
