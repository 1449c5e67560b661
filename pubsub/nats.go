package pubsub

import (
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATS is a PubSub over a NATS connection.
type NATS struct {
	Conn *nats.Conn
}

// DialNATS connects to url and keeps reconnecting forever.
func DialNATS(url string) (*NATS, error) {
	conn, err := nats.Connect(url,
		nats.Name("smarttask"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("could not connect to nats: %w", err)
	}

	return &NATS{Conn: conn}, nil
}

func (n *NATS) Pub(topic string, data []byte) error {
	if err := n.Conn.Publish(topic, data); err != nil {
		return fmt.Errorf("could not publish to %s: %w", topic, err)
	}
	return nil
}

func (n *NATS) Sub(topic string, fn func([]byte)) (func() error, error) {
	sub, err := n.Conn.Subscribe(topic, func(msg *nats.Msg) {
		fn(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to %s: %w", topic, err)
	}

	return func() error {
		err := sub.Unsubscribe()
		if err != nil && !errors.Is(err, nats.ErrBadSubscription) && !errors.Is(err, nats.ErrConnectionClosed) {
			return fmt.Errorf("could not unsubscribe from %s: %w", topic, err)
		}
		return nil
	}, nil
}

func (n *NATS) Close() error {
	if err := n.Conn.Drain(); err != nil {
		return fmt.Errorf("could not drain nats connection: %w", err)
	}
	return nil
}
