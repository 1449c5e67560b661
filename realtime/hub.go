// Package realtime delivers newly inserted messages to interested
// subscribers over a pubsub channel.
package realtime

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nicolasparada/smarttask/pubsub"
	"github.com/nicolasparada/smarttask/types"
)

// Hub publishes message inserts on per-user topics and
// manages subscriptions to them.
type Hub struct {
	PubSub pubsub.PubSub
	Logger *slog.Logger

	mu   sync.Mutex
	subs map[string]*Subscription
}

func NewHub(ps pubsub.PubSub, logger *slog.Logger) *Hub {
	return &Hub{
		PubSub: ps,
		Logger: logger,
		subs:   map[string]*Subscription{},
	}
}

// Subscription is a handle to an active subscription.
type Subscription struct {
	ID        string
	UserID    string
	PartnerID string

	unsub func() error
}

// Pair reports whether the subscription is scoped to a single conversation.
func (s *Subscription) Pair() bool {
	return s.PartnerID != ""
}

type event struct {
	Message types.Message `msgpack:"m"`
}

func userTopic(userID string) string { return "messages.user." + userID }

// Publish announces m to both of its participants.
// A failure on one topic does not keep the other from being published.
func (h *Hub) Publish(m types.Message) error {
	b, err := msgpack.Marshal(event{Message: m})
	if err != nil {
		return fmt.Errorf("msgpack marshal message event: %w", err)
	}

	errRecipient := h.PubSub.Pub(userTopic(m.RecipientID), b)
	if errRecipient != nil {
		errRecipient = fmt.Errorf("publish to recipient: %w", errRecipient)
	}

	errSender := h.PubSub.Pub(userTopic(m.SenderID), b)
	if errSender != nil {
		errSender = fmt.Errorf("publish to sender: %w", errSender)
	}

	return errors.Join(errRecipient, errSender)
}

// SubscribeConversations delivers every message the user sends or receives.
func (h *Hub) SubscribeConversations(userID string, onEvent func(types.Message)) (*Subscription, error) {
	return h.subscribe(userID, "", onEvent)
}

// SubscribeConversation delivers only the messages exchanged
// between userID and partnerID.
func (h *Hub) SubscribeConversation(userID, partnerID string, onEvent func(types.Message)) (*Subscription, error) {
	return h.subscribe(userID, partnerID, onEvent)
}

func (h *Hub) subscribe(userID, partnerID string, onEvent func(types.Message)) (*Subscription, error) {
	subID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("could not generate subscription id: %w", err)
	}

	sub := &Subscription{
		ID:        subID,
		UserID:    userID,
		PartnerID: partnerID,
	}

	sub.unsub, err = h.PubSub.Sub(userTopic(userID), func(data []byte) {
		var ev event
		if err := msgpack.Unmarshal(data, &ev); err != nil {
			h.Logger.Error("could not msgpack unmarshal message event", "error", err)
			return
		}

		if sub.Pair() && !ev.Message.Between(userID, partnerID) {
			return
		}

		onEvent(ev.Message)
	})
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to user messages: %w", err)
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()

	return sub, nil
}

// Unsubscribe stops delivery to sub. Calling it more than once is a no-op.
func (h *Hub) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return nil
	}

	h.mu.Lock()
	_, ok := h.subs[sub.ID]
	delete(h.subs, sub.ID)
	h.mu.Unlock()

	if !ok {
		return nil
	}

	return sub.unsub()
}

// Len is the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
