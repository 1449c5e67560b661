package types

import (
	"time"

	"github.com/nicolasparada/smarttask/validator"
)

const (
	defaultActivityLimit = 200
	maxActivityLimit     = 500
)

type ActivityKind string

const (
	ActivityKindTask         ActivityKind = "task"
	ActivityKindNotification ActivityKind = "notification"
	ActivityKindMessage      ActivityKind = "message"
)

type ActivityItem struct {
	Kind      ActivityKind `json:"kind"`
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Detail    string       `json:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

type ListActivity struct {
	Limit uint
}

func (in *ListActivity) Validate() error {
	v := validator.New()
	if in.Limit == 0 {
		in.Limit = defaultActivityLimit
	}
	if in.Limit > maxActivityLimit {
		v.AddError("Limit", "Limit must be at most 500")
	}
	return v.AsError()
}
