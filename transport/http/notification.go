package http

import (
	"net/http"

	"github.com/matryer/way"

	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) notifications(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Notifications(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out.Items = nonNil(out.Items)
	h.respond(w, out, http.StatusOK)
}

func (h *handler) readNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.ReadNotification{NotificationID: way.Param(ctx, "notification_id")}
	if err := h.svc.ReadNotification(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) readAllNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ReadAllNotifications(r.Context()); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
