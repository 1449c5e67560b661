package realtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/nicolasparada/smarttask/types"
)

const (
	defaultEventBuffer = 64
	defaultSeenSize    = 256
)

// Loop reconciles push delivery with periodic polling.
// Push events are deduplicated by message ID and handed to OnEvent.
// Refresh runs once on start and then every Interval.
// Events and refreshes are never run concurrently with each other.
type Loop struct {
	// Subscribe starts push delivery. A failure is logged and the loop
	// keeps going with polling only.
	Subscribe func(onEvent func(types.Message)) (unsub func() error, err error)
	Refresh   func(ctx context.Context) error
	OnEvent   func(ctx context.Context, m types.Message) error
	// Interval disables polling when zero.
	Interval time.Duration
	Logger   *slog.Logger
	// SeenSize bounds the dedup memory. Defaults to 256 IDs.
	SeenSize int
}

// Run blocks until ctx is done or OnEvent fails.
// It always unsubscribes before returning.
func (l Loop) Run(ctx context.Context) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	events := make(chan types.Message, defaultEventBuffer)

	if l.Subscribe != nil {
		unsub, err := l.Subscribe(func(m types.Message) {
			select {
			case events <- m:
			default:
				logger.Warn("realtime event dropped; next refresh will catch up", "message_id", m.ID)
			}
		})
		if err != nil {
			logger.Error("could not subscribe; falling back to polling", "error", err)
		} else {
			defer func() {
				if err := unsub(); err != nil {
					logger.Error("could not unsubscribe", "error", err)
				}
			}()
		}
	}

	refresh := func() {
		if l.Refresh == nil {
			return
		}
		if err := l.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Error("realtime refresh failed", "error", err)
		}
	}

	refresh()

	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	seen := newSeenSet(l.SeenSize)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			refresh()
		case m := <-events:
			if !seen.add(m.ID) {
				continue
			}

			if l.OnEvent == nil {
				continue
			}

			if err := l.OnEvent(ctx, m); err != nil {
				return err
			}
		}
	}
}

// seenSet remembers the last N IDs added to it.
type seenSet struct {
	ring []string
	next int
	set  map[string]struct{}
}

func newSeenSet(size int) *seenSet {
	if size <= 0 {
		size = defaultSeenSize
	}
	return &seenSet{
		ring: make([]string, size),
		set:  make(map[string]struct{}, size),
	}
}

// add reports whether id was not seen before.
func (s *seenSet) add(id string) bool {
	if _, ok := s.set[id]; ok {
		return false
	}

	if old := s.ring[s.next]; old != "" {
		delete(s.set, old)
	}

	s.ring[s.next] = id
	s.next = (s.next + 1) % len(s.ring)
	s.set[id] = struct{}{}

	return true
}
