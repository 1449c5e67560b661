package http

import (
	"mime"
	"net/http"

	"github.com/matryer/way"

	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var in types.SendMessage
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.RecipientID = way.Param(ctx, "partner_id")
	out, err := h.svc.SendMessage(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) messages(w http.ResponseWriter, r *http.Request) {
	if acceptsEventStream(r) {
		h.messageStream(w, r)
		return
	}

	ctx := r.Context()
	in := types.ListMessages{PartnerID: way.Param(ctx, "partner_id")}
	mm, err := h.svc.Messages(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(mm), http.StatusOK)
}

func (h *handler) markMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.MarkMessagesAsRead{PartnerID: way.Param(ctx, "partner_id")}
	if err := h.svc.MarkMessagesAsRead(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) message(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.RetrieveMessage{MessageID: way.Param(ctx, "message_id")}
	out, err := h.svc.Message(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.DeleteMessage{MessageID: way.Param(ctx, "message_id")}
	if err := h.svc.DeleteMessage(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) eligibleRecipients(w http.ResponseWriter, r *http.Request) {
	uu, err := h.svc.EligibleRecipients(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(uu), http.StatusOK)
}

func (h *handler) unreadMessages(w http.ResponseWriter, r *http.Request) {
	out := h.svc.UnreadMessageCount(r.Context())
	if errs.IsUnauthenticated(out.Err) {
		h.respondErr(w, out.Err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func acceptsEventStream(r *http.Request) bool {
	a, _, err := mime.ParseMediaType(r.Header.Get("Accept"))
	return err == nil && a == "text/event-stream"
}
