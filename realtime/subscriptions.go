package realtime

import (
	"errors"
	"sync"
)

// Subscriptions keeps at most one active subscription per key.
type Subscriptions struct {
	Hub *Hub

	mu    sync.Mutex
	byKey map[string]*Subscription
}

func NewSubscriptions(hub *Hub) *Subscriptions {
	return &Subscriptions{
		Hub:   hub,
		byKey: map[string]*Subscription{},
	}
}

// Key identifies a subscription scope.
func Key(userID, partnerID string) string {
	if partnerID == "" {
		return userID
	}
	return userID + ":" + partnerID
}

// Replace stores sub under key, unsubscribing the previous handle first.
func (ss *Subscriptions) Replace(key string, sub *Subscription) error {
	ss.mu.Lock()
	prev := ss.byKey[key]
	ss.byKey[key] = sub
	ss.mu.Unlock()

	if prev == nil || prev == sub {
		return nil
	}

	return ss.Hub.Unsubscribe(prev)
}

// Remove unsubscribes sub and forgets it unless a newer handle
// already replaced it under key.
func (ss *Subscriptions) Remove(key string, sub *Subscription) error {
	ss.mu.Lock()
	if ss.byKey[key] == sub {
		delete(ss.byKey, key)
	}
	ss.mu.Unlock()

	return ss.Hub.Unsubscribe(sub)
}

func (ss *Subscriptions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.byKey)
}

func (ss *Subscriptions) Close() error {
	ss.mu.Lock()
	subs := ss.byKey
	ss.byKey = map[string]*Subscription{}
	ss.mu.Unlock()

	var err error
	for _, sub := range subs {
		err = errors.Join(err, ss.Hub.Unsubscribe(sub))
	}
	return err
}
