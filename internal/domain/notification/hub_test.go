package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_SubscribeAndNotify(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")
	hub.Subscribe("bob")

	notified := hub.Notify("hello")

	assert.Equal(t, 2, notified)
	assert.Equal(t, 2, hub.DeliveredTotal())

	inbox := hub.Inbox("alice")
	assert.Len(t, inbox, 1)
	assert.Equal(t, "hello", inbox[0].Text)
	assert.NotEmpty(t, inbox[0].ID)
	assert.False(t, inbox[0].SentAt.IsZero())
}

func TestHub_DeliveryOrder(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("c")
	hub.Subscribe("a")
	hub.Subscribe("b")

	assert.Equal(t, []string{"c", "a", "b"}, hub.Subscribers())
}

func TestHub_SubscribeIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")
	hub.Subscribe("bob")
	hub.Subscribe("alice")

	assert.Equal(t, 2, hub.SubscriberCount())
	assert.Equal(t, []string{"alice", "bob"}, hub.Subscribers())

	notified := hub.Notify("once")
	assert.Equal(t, 2, notified)
	assert.Len(t, hub.Inbox("alice"), 1)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")
	hub.Subscribe("bob")
	hub.Notify("first")

	hub.Unsubscribe("alice")

	assert.False(t, hub.IsSubscribed("alice"))
	assert.Equal(t, 1, hub.Notify("second"))
	assert.Empty(t, hub.Inbox("alice"))

	bobInbox := hub.Inbox("bob")
	assert.Len(t, bobInbox, 2)
	assert.Equal(t, "first", bobInbox[0].Text)
	assert.Equal(t, "second", bobInbox[1].Text)
}

func TestHub_Deliver_TargetsSingleSubscriber(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")
	hub.Subscribe("bob")

	assert.True(t, hub.Deliver("bob", "just for you"))

	assert.Empty(t, hub.Inbox("alice"))
	assert.Len(t, hub.Inbox("bob"), 1)
	assert.Equal(t, "just for you", hub.Inbox("bob")[0].Text)
	assert.Equal(t, 1, hub.DeliveredTotal())
}

func TestHub_Deliver_NonMember(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")

	assert.False(t, hub.Deliver("ghost", "lost"))
	assert.Equal(t, 0, hub.DeliveredTotal())
}

func TestHub_UnsubscribeNonMember(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")

	hub.Unsubscribe("ghost")

	assert.Equal(t, 1, hub.SubscriberCount())
	assert.True(t, hub.IsSubscribed("alice"))
}

func TestHub_NotifyWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	assert.Equal(t, 0, hub.Notify("into the void"))
	assert.Equal(t, 0, hub.DeliveredTotal())
}

func TestHub_InboxReturnsCopy(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("alice")
	hub.Notify("original")

	inbox := hub.Inbox("alice")
	inbox[0].Text = "tampered"

	assert.Equal(t, "original", hub.Inbox("alice")[0].Text)
}
