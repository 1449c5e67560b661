package types

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nicolasparada/smarttask/textutil"
	"github.com/nicolasparada/smarttask/validator"
)

const (
	maxReportTitleLength   = 200
	maxReportContentLength = 20000
)

type ReportType string

const (
	ReportTypeAIChat    ReportType = "ai_chat"
	ReportTypeAIInsight ReportType = "ai_insight"
)

func (t ReportType) Valid() bool {
	return t == ReportTypeAIChat || t == ReportTypeAIInsight
}

// Report is a saved assistant output.
type Report struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"userID" db:"user_id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Type      ReportType `json:"reportType" db:"report_type"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type CreateReport struct {
	Title   string
	Content string
	Type    ReportType `json:"reportType"`

	userID string
}

func (in *CreateReport) SetUserID(userID string) {
	in.userID = userID
}

func (in CreateReport) UserID() string {
	return in.userID
}

func (in *CreateReport) Validate() error {
	v := validator.New()

	in.Title = textutil.SmartTrim(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	if in.Title == "" {
		v.AddError("Title", "Title is required")
	}
	if utf8.RuneCountInString(in.Title) > maxReportTitleLength {
		v.AddError("Title", "Title must be at most 200 characters")
	}
	if in.Content == "" {
		v.AddError("Content", "Content is required")
	}
	if utf8.RuneCountInString(in.Content) > maxReportContentLength {
		v.AddError("Content", "Content must be at most 20000 characters")
	}
	if !in.Type.Valid() {
		v.AddError("Type", "Report type is invalid")
	}

	return v.AsError()
}

type ListReports struct {
	Type *ReportType

	userID string
}

func (in *ListReports) SetUserID(userID string) {
	in.userID = userID
}

// UserID is the owner filter. Empty when listing everyone's reports.
func (in ListReports) UserID() string {
	return in.userID
}

func (in *ListReports) Validate() error {
	v := validator.New()
	if in.Type != nil && !in.Type.Valid() {
		v.AddError("Type", "Report type is invalid")
	}
	return v.AsError()
}
