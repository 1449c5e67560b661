package http

import (
	"net/http"

	"github.com/matryer/way"

	"github.com/nicolasparada/smarttask/types"
)

func (h *handler) createTask(w http.ResponseWriter, r *http.Request) {
	var in types.CreateTask
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.CreateTask(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) tasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := parseUint(q, "limit")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	in := types.ListTasks{
		Status:   optional[types.TaskStatus](q, "status"),
		Priority: optional[types.TaskPriority](q, "priority"),
		All:      q.Get("all") == "true",
		Limit:    limit,
	}
	tt, err := h.svc.Tasks(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, nonNil(tt), http.StatusOK)
}

func (h *handler) task(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.RetrieveTask{TaskID: way.Param(ctx, "task_id")}
	out, err := h.svc.Task(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) updateTask(w http.ResponseWriter, r *http.Request) {
	var in types.UpdateTask
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.TaskID = way.Param(ctx, "task_id")
	out, err := h.svc.UpdateTask(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := types.DeleteTask{TaskID: way.Param(ctx, "task_id")}
	if err := h.svc.DeleteTask(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) commentOnTask(w http.ResponseWriter, r *http.Request) {
	var in types.CommentOnTask
	if err := decodeJSON(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.TaskID = way.Param(ctx, "task_id")
	if err := h.svc.CommentOnTask(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
