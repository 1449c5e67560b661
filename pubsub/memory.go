package pubsub

import (
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Memory is an in-process PubSub. Delivery is synchronous.
type Memory struct {
	mu   sync.RWMutex
	subs map[string]map[string]func([]byte)
}

func NewMemory() *Memory {
	return &Memory{
		subs: map[string]map[string]func([]byte){},
	}
}

func (m *Memory) Pub(topic string, data []byte) error {
	m.mu.RLock()
	fns := make([]func([]byte), 0, len(m.subs[topic]))
	for _, fn := range m.subs[topic] {
		fns = append(fns, fn)
	}
	m.mu.RUnlock()

	for _, fn := range fns {
		fn(data)
	}

	return nil
}

func (m *Memory) Sub(topic string, fn func([]byte)) (func() error, error) {
	key, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.subs[topic] == nil {
		m.subs[topic] = map[string]func([]byte){}
	}
	m.subs[topic][key] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() error {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()

			delete(m.subs[topic], key)
			if len(m.subs[topic]) == 0 {
				delete(m.subs, topic)
			}
		})
		return nil
	}, nil
}
