package http

import (
	"context"
	"net/http"

	"github.com/matryer/way"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/metrics"
	"github.com/nicolasparada/smarttask/realtime"
	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) conversations(w http.ResponseWriter, r *http.Request) {
	if acceptsEventStream(r) {
		h.conversationStream(w, r)
		return
	}

	out, err := h.svc.Conversations(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out.Value = nonNil(out.Value)
	h.respond(w, out, http.StatusOK)
}

// eventStream holds back the event stream header until the first
// successful fetch. Until then a failure is answered with a regular
// error response and ends the stream.
type eventStream struct {
	h      *handler
	w      http.ResponseWriter
	f      http.Flusher
	cancel context.CancelFunc
	open   bool
}

func (s *eventStream) start() {
	if s.open {
		return
	}

	writeEventStreamHeader(s.w)
	s.open = true
}

func (s *eventStream) fail(err error) error {
	if !s.open {
		s.h.respondErr(s.w, err)
		s.cancel()
	}
	return err
}

// conversationStream sends a conversations snapshot on connect and on every
// refresh, plus a message event followed by a fresh snapshot whenever
// the logged-in user sends or receives a message.
func (h *handler) conversationStream(w http.ResponseWriter, r *http.Request) {
	f, ok := w.(http.Flusher)
	if !ok {
		h.respondErr(w, errStreamingUnsupported)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		h.respondErr(w, errs.Unauthenticated)
		return
	}

	key := realtime.Key(loggedInUser.ID, "")
	st := &eventStream{h: h, w: w, f: f, cancel: cancel}

	snapshot := func(ctx context.Context) error {
		cc, err := h.svc.Conversations(ctx)
		if err != nil {
			return st.fail(err)
		}

		st.start()

		cc.Value = nonNil(cc.Value)
		if err := h.writeSSE(w, "conversations", "", cc); err != nil {
			return err
		}

		f.Flush()
		return nil
	}

	loop := realtime.Loop{
		Subscribe: func(onEvent func(types.Message)) (func() error, error) {
			sub, err := h.svc.SubscribeConversations(ctx, onEvent)
			if err != nil {
				return nil, err
			}

			if err := h.subs.Replace(key, sub); err != nil {
				h.logger.Error("could not release previous conversations subscription", "error", err, "user_id", loggedInUser.ID)
			}

			return func() error { return h.subs.Remove(key, sub) }, nil
		},
		Refresh: snapshot,
		OnEvent: func(ctx context.Context, m types.Message) error {
			if !st.open {
				return nil
			}

			id, err := realtime.EncodeCursor(realtime.CursorOf(m))
			if err != nil {
				return err
			}

			if err := h.writeSSE(w, "message", id, m); err != nil {
				return err
			}

			metrics.RealtimeEvents.Inc()

			if err := snapshot(ctx); err != nil {
				h.logger.Error("could not refresh conversations after message", "error", err, "user_id", loggedInUser.ID)
			}

			f.Flush()
			return nil
		},
		Interval: h.refreshInterval,
		Logger:   h.logger,
	}

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		h.logger.Error("conversations stream stopped", "error", err, "user_id", loggedInUser.ID)
	}
}

// messageStream sends the messages of a single conversation as they arrive.
// Each event carries a cursor as its ID. A client reconnecting with
// Last-Event-ID gets whatever it missed; a fresh client gets only
// messages it did not have at connect time.
// Every message is sent at most once regardless of the order
// in which pushes and refreshes observe it.
func (h *handler) messageStream(w http.ResponseWriter, r *http.Request) {
	f, ok := w.(http.Flusher)
	if !ok {
		h.respondErr(w, errStreamingUnsupported)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	partnerID := way.Param(ctx, "partner_id")

	var resume *realtime.Cursor
	if s := r.Header.Get("Last-Event-ID"); s != "" {
		c, err := realtime.DecodeCursor(s)
		if err != nil {
			h.respondErr(w, err)
			return
		}

		resume = &c
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		h.respondErr(w, errs.Unauthenticated)
		return
	}

	key := realtime.Key(loggedInUser.ID, partnerID)
	st := &eventStream{h: h, w: w, f: f, cancel: cancel}
	sent := map[string]struct{}{}

	emit := func(m types.Message) error {
		id, err := realtime.EncodeCursor(realtime.CursorOf(m))
		if err != nil {
			return err
		}

		if err := h.writeSSE(w, "message", id, m); err != nil {
			return err
		}

		sent[m.ID] = struct{}{}
		metrics.RealtimeEvents.Inc()
		return nil
	}

	catchUp := func(ctx context.Context) error {
		mm, err := h.svc.Messages(ctx, types.ListMessages{PartnerID: partnerID})
		if err != nil {
			return st.fail(err)
		}

		if !st.open {
			st.start()

			// The client already has everything up to its cursor,
			// or everything at all when connecting fresh.
			var missed []types.Message
			if resume != nil {
				missed = resume.After(mm)
			}
			for _, m := range mm[:len(mm)-len(missed)] {
				sent[m.ID] = struct{}{}
			}
		}

		for _, m := range mm {
			if _, ok := sent[m.ID]; ok {
				continue
			}

			if err := emit(m); err != nil {
				return err
			}
		}

		f.Flush()
		return nil
	}

	loop := realtime.Loop{
		Subscribe: func(onEvent func(types.Message)) (func() error, error) {
			sub, err := h.svc.SubscribeConversation(ctx, partnerID, onEvent)
			if err != nil {
				return nil, err
			}

			if err := h.subs.Replace(key, sub); err != nil {
				h.logger.Error("could not release previous message subscription", "error", err, "user_id", loggedInUser.ID)
			}

			return func() error { return h.subs.Remove(key, sub) }, nil
		},
		Refresh: catchUp,
		OnEvent: func(ctx context.Context, m types.Message) error {
			if !st.open {
				return nil
			}

			if _, ok := sent[m.ID]; ok {
				return nil
			}

			if err := emit(m); err != nil {
				return err
			}

			f.Flush()
			return nil
		},
		Interval: h.refreshInterval,
		Logger:   h.logger,
	}

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		h.logger.Error("message stream stopped", "error", err, "user_id", loggedInUser.ID, "partner_id", partnerID)
	}
}

func writeEventStreamHeader(w http.ResponseWriter) {
	header := w.Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("Content-Type", "text/event-stream; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}
