package http

import (
	"net/http"

	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) createReport(w http.ResponseWriter, r *http.Request) {
	var in types.CreateReport
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.CreateReport(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) reports(w http.ResponseWriter, r *http.Request) {
	in := types.ListReports{Type: optional[types.ReportType](r.URL.Query(), "type")}
	out, err := h.svc.Reports(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(out), http.StatusOK)
}

func (h *handler) allReports(w http.ResponseWriter, r *http.Request) {
	in := types.ListReports{Type: optional[types.ReportType](r.URL.Query(), "type")}
	out, err := h.svc.AllReports(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(out), http.StatusOK)
}

func (h *handler) userPerformance(w http.ResponseWriter, r *http.Request) {
	in := types.RetrievePerformance{UserID: r.URL.Query().Get("user_id")}
	out, err := h.svc.UserPerformance(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) performances(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Performances(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(out), http.StatusOK)
}

func (h *handler) overallPerformance(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.OverallPerformance(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}
