// Package pubsub fans out opaque payloads by topic.
package pubsub

// PubSub publishes to and subscribes on string topics.
// Handlers run on the implementation's delivery goroutine
// and must not block.
type PubSub interface {
	Pub(topic string, data []byte) error
	Sub(topic string, fn func(data []byte)) (unsub func() error, err error)
}
