package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"syscall"

	"github.com/nicolasparada/smarttask/errs"
)

var (
	errBadRequest           = errors.New("bad request")
	errStreamingUnsupported = errors.New("streaming unsupported")
)

type errRespBody struct {
	Error string  `json:"error"`
	Kind  string  `json:"kind,omitempty"`
	Field *string `json:"field,omitempty"`
}

func (h *handler) respond(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		h.respondErr(w, fmt.Errorf("could not json marshal http response body: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, context.Canceled) {
		h.logger.Error("could not write down http response", "error", err)
	}
}

func (h *handler) respondErr(w http.ResponseWriter, err error) {
	statusCode := err2code(err)
	if statusCode == http.StatusInternalServerError {
		if !errors.Is(err, context.Canceled) {
			h.logger.Error("internal server error", "error", err)
		}
		h.respond(w, errRespBody{Error: "internal server error"}, statusCode)
		return
	}

	body := errRespBody{
		Error: err.Error(),
		Kind:  string(errs.KindOf(err)),
	}

	var e *errs.Error
	if errors.As(err, &e) {
		body.Error = e.Message
		body.Field = e.Field
	}

	if statusCode == http.StatusServiceUnavailable {
		h.logger.Error("service unavailable", "error", err)
		body.Error = "service unavailable"
	}

	h.respond(w, body, statusCode)
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errStreamingUnsupported):
		return http.StatusExpectationFailed
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidArgument:
		return http.StatusUnprocessableEntity
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyExists:
		return http.StatusConflict
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindUnavailable:
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// writeSSE writes a single server-sent event. id is omitted when empty.
func (h *handler) writeSSE(w io.Writer, event, id string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not json marshal sse data: %w", err)
	}

	if id != "" {
		_, err = fmt.Fprintf(w, "event: %s\nid: %s\ndata: %s\n\n", event, id, b)
	} else {
		_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	}
	if err != nil {
		return fmt.Errorf("could not write sse %s: %w", event, err)
	}

	return nil
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}

	return nil
}

func parseUint(q url.Values, key string) (uint, error) {
	if !q.Has(key) {
		return 0, nil
	}

	n, err := strconv.ParseUint(q.Get(key), 10, 64)
	if err != nil {
		return 0, errs.NewInvalidArgumentError(key, "Invalid "+key)
	}

	return uint(n), nil
}

func optional[T ~string](q url.Values, key string) *T {
	if !q.Has(key) || q.Get(key) == "" {
		return nil
	}

	v := T(q.Get(key))
	return &v
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
