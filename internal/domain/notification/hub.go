// Package notification содержит хаб рассылки текстовых уведомлений
// об изменениях курса. Вместо прямого вызова подписчика доставка
// моделируется как добавление сообщения во входящий ящик каждого
// подписчика - на этом уровне доставка безошибочна.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message представляет одно доставленное уведомление.
type Message struct {
	// ID - уникальный идентификатор сообщения.
	ID string

	// Text - текст уведомления.
	Text string

	// SentAt - время отправки.
	SentAt time.Time
}

// Hub поддерживает упорядоченный набор подписчиков и рассылает им
// текстовые сообщения. Подписчики идентифицируются произвольной строкой
// (в реестре это ID студента).
type Hub struct {
	mu sync.Mutex

	// order - ID подписчиков в порядке подписки.
	// Доставка выполняется строго в этом порядке.
	order []string

	// inboxes - входящие ящики подписчиков.
	inboxes map[string][]Message

	// delivered - общее количество доставленных сообщений.
	delivered int
}

// NewHub создаёт пустой хаб уведомлений.
func NewHub() *Hub {
	return &Hub{
		order:   make([]string, 0),
		inboxes: make(map[string][]Message),
	}
}

// Subscribe добавляет подписчика. Повторная подписка того же ID -
// no-op, позиция в порядке доставки сохраняется.
func (h *Hub) Subscribe(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.inboxes[subscriberID]; ok {
		return
	}

	h.order = append(h.order, subscriberID)
	h.inboxes[subscriberID] = make([]Message, 0)
}

// Unsubscribe удаляет подписчика вместе с его входящим ящиком.
// Отписка не-подписчика - no-op.
func (h *Hub) Unsubscribe(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.inboxes[subscriberID]; !ok {
		return
	}

	delete(h.inboxes, subscriberID)
	for i, id := range h.order {
		if id == subscriberID {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Notify синхронно доставляет сообщение всем текущим подписчикам
// в порядке подписки. Возвращает количество доставленных копий.
func (h *Hub) Notify(text string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sentAt := time.Now().UTC()
	for _, id := range h.order {
		h.inboxes[id] = append(h.inboxes[id], Message{
			ID:     uuid.NewString(),
			Text:   text,
			SentAt: sentAt,
		})
		h.delivered++
	}

	return len(h.order)
}

// Deliver доставляет сообщение одному подписчику, не затрагивая
// остальных. Возвращает false, если указанный ID не подписан.
func (h *Hub) Deliver(subscriberID, text string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.inboxes[subscriberID]; !ok {
		return false
	}

	h.inboxes[subscriberID] = append(h.inboxes[subscriberID], Message{
		ID:     uuid.NewString(),
		Text:   text,
		SentAt: time.Now().UTC(),
	})
	h.delivered++
	return true
}

// IsSubscribed проверяет, подписан ли указанный ID.
func (h *Hub) IsSubscribed(subscriberID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.inboxes[subscriberID]
	return ok
}

// Subscribers возвращает ID подписчиков в порядке подписки.
func (h *Hub) Subscribers() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, len(h.order))
	copy(ids, h.order)
	return ids
}

// SubscriberCount возвращает количество подписчиков.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.order)
}

// Inbox возвращает копию входящего ящика подписчика в порядке доставки.
// Для не-подписчика возвращается пустой список.
func (h *Hub) Inbox(subscriberID string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	inbox := h.inboxes[subscriberID]
	messages := make([]Message, len(inbox))
	copy(messages, inbox)
	return messages
}

// DeliveredTotal возвращает общее количество доставленных сообщений.
func (h *Hub) DeliveredTotal() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.delivered
}
