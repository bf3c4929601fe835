// Package eventhandler содержит обработчики доменных событий.
package eventhandler

import (
	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
	"github.com/academy-hub/academy-record-keeper/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// AUDIT LOG HANDLER
// Пишет каждое доменное событие в структурированный журнал.
// Это единственный потребитель шины событий в реестре: синхронную
// доставку уведомлений студентам выполняет сам курс, журнал - побочный
// наблюдатель и на инварианты не влияет.
// ═══════════════════════════════════════════════════════════════════════════

// AuditLogHandler журналирует доменные события.
type AuditLogHandler struct {
	log *logger.Logger
}

// NewAuditLogHandler создаёт новый AuditLogHandler.
func NewAuditLogHandler(log *logger.Logger) *AuditLogHandler {
	if log == nil {
		log = logger.Default()
	}
	return &AuditLogHandler{
		log: log.With(logger.Component("audit")),
	}
}

// Register подписывает обработчик на все события шины.
func (h *AuditLogHandler) Register(bus shared.EventSubscriber) error {
	return bus.SubscribeAll(h.Handle)
}

// Handle журналирует одно событие. Никогда не возвращает ошибку:
// журнал не должен влиять на публикацию.
func (h *AuditLogHandler) Handle(event shared.Event) error {
	fields := []logger.Field{
		logger.String("event_type", string(event.EventType())),
		logger.String("aggregate_id", event.AggregateID()),
		logger.Any("payload", event.Payload()),
	}

	h.log.Info("domain event", fields...)
	return nil
}
