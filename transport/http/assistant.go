package http

import (
	"net/http"

	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) assistantChat(w http.ResponseWriter, r *http.Request) {
	var in types.AssistantChat
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.AssistantChat(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) taskSuggestions(w http.ResponseWriter, r *http.Request) {
	var in types.SuggestTask
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.TaskSuggestions(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	var in types.Summarize
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Summary(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) insights(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Insights(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) activity(w http.ResponseWriter, r *http.Request) {
	limit, err := parseUint(r.URL.Query(), "limit")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Activity(r.Context(), types.ListActivity{Limit: limit})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(out), http.StatusOK)
}
