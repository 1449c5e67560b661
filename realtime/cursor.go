package realtime

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

// Cursor points at a message in conversation order.
// Streams hand it out as the event ID so reconnecting clients
// can resume right after the last message they saw.
type Cursor struct {
	ID        string    `msgpack:"i"`
	CreatedAt time.Time `msgpack:"t"`
}

func CursorOf(m types.Message) Cursor {
	return Cursor{ID: m.ID, CreatedAt: m.CreatedAt}
}

func EncodeCursor(c Cursor) (string, error) {
	b, err := msgpack.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("msgpack marshal cursor: %w", err)
	}

	return base58.Encode(b), nil
}

func DecodeCursor(s string) (Cursor, error) {
	var c Cursor

	b := base58.Decode(s)
	if len(b) == 0 {
		return c, errs.NewInvalidArgumentError("Last-Event-ID", "Invalid cursor")
	}

	if err := msgpack.Unmarshal(b, &c); err != nil {
		return c, errs.NewInvalidArgumentError("Last-Event-ID", "Invalid cursor")
	}

	return c, nil
}

// After returns the messages of mm that sort after c.
// mm must be in conversation order.
func (c Cursor) After(mm []types.Message) []types.Message {
	pivot := types.Message{ID: c.ID, CreatedAt: c.CreatedAt}
	for i, m := range mm {
		if m.After(pivot) {
			return mm[i:]
		}
	}
	return nil
}
