package http

import (
	"net/http"

	"github.com/matryer/way"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var in types.Register
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondErr(w, errs.Unauthenticated)
		return
	}

	h.respond(w, user, http.StatusOK)
}

func (h *handler) users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := types.ListUsers{
		Role:   optional[types.Role](q, "role"),
		Status: optional[types.UserStatus](q, "status"),
	}

	uu, err := h.svc.Users(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(uu), http.StatusOK)
}

func (h *handler) assignableUsers(w http.ResponseWriter, r *http.Request) {
	uu, err := h.svc.AssignableUsers(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(uu), http.StatusOK)
}

func (h *handler) approveUser(w http.ResponseWriter, r *http.Request) {
	var in types.ApproveUser
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.UserID = way.Param(ctx, "user_id")
	if err := h.svc.ApproveUser(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	var in types.UpdateUserRole
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.UserID = way.Param(ctx, "user_id")
	if err := h.svc.UpdateUserRole(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) rejectUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.RejectUser{UserID: way.Param(ctx, "user_id")}
	if err := h.svc.RejectUser(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
