package types

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/validator"
)

const (
	maxTaskTitleLength       = 200
	maxTaskDescriptionLength = 5000
	maxTaskCommentLength     = 1000
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress || s == TaskStatusCompleted
}

type Task struct {
	ID          string       `json:"id" db:"id"`
	UserID      string       `json:"userID" db:"user_id"`
	CreatedBy   string       `json:"createdBy" db:"created_by"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	Status      TaskStatus   `json:"status" db:"status"`
	DueDate     *time.Time   `json:"dueDate" db:"due_date"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

type CreateTask struct {
	UserID      string
	Title       string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     *time.Time

	createdBy string
}

func (in *CreateTask) SetCreatedBy(userID string) {
	in.createdBy = userID
}

func (in CreateTask) CreatedBy() string {
	return in.createdBy
}

func (in *CreateTask) Validate() error {
	v := validator.New()

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Priority == "" {
		in.Priority = TaskPriorityMedium
	}
	if in.Status == "" {
		in.Status = TaskStatusPending
	}

	if !id.Valid(in.UserID) {
		v.AddError("UserID", "Assignee is invalid")
	}
	validateTaskFields(v, &in.Title, &in.Description, &in.Priority, &in.Status)

	return v.AsError()
}

type UpdateTask struct {
	TaskID      string
	Title       *string
	Description *string
	Priority    *TaskPriority
	Status      *TaskStatus
	DueDate     *time.Time
}

// OnlyStatus reports whether the update touches nothing but the status.
func (in UpdateTask) OnlyStatus() bool {
	return in.Title == nil && in.Description == nil && in.Priority == nil && in.DueDate == nil
}

func (in *UpdateTask) Validate() error {
	v := validator.New()

	if !id.Valid(in.TaskID) {
		v.AddError("TaskID", "Task ID is invalid")
	}
	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	validateTaskFields(v, in.Title, in.Description, in.Priority, in.Status)

	return v.AsError()
}

type RetrieveTask struct {
	TaskID string
}

func (in *RetrieveTask) Validate() error {
	v := validator.New()
	if !id.Valid(in.TaskID) {
		v.AddError("TaskID", "Task ID is invalid")
	}
	return v.AsError()
}

type DeleteTask struct {
	TaskID string
}

func (in *DeleteTask) Validate() error {
	v := validator.New()
	if !id.Valid(in.TaskID) {
		v.AddError("TaskID", "Task ID is invalid")
	}
	return v.AsError()
}

type CommentOnTask struct {
	TaskID  string
	Comment string
}

func (in *CommentOnTask) Validate() error {
	v := validator.New()

	in.Comment = strings.TrimSpace(in.Comment)

	if !id.Valid(in.TaskID) {
		v.AddError("TaskID", "Task ID is invalid")
	}
	if in.Comment == "" {
		v.AddError("Comment", "Comment can't be empty")
	}
	if utf8.RuneCountInString(in.Comment) > maxTaskCommentLength {
		v.AddError("Comment", "Comment must be at most 1000 characters")
	}

	return v.AsError()
}

type ListTasks struct {
	Status   *TaskStatus
	Priority *TaskPriority
	// All lists every task instead of only the ones assigned
	// to the logged-in user. Admin and staff only.
	All bool
	// Limit caps the result size when greater than zero.
	Limit uint
	// RecentlyUpdated orders by last update instead of creation.
	RecentlyUpdated bool

	userID string
}

func (in *ListTasks) SetUserID(userID string) {
	in.userID = userID
}

// UserID is the assignee filter. Empty when listing all tasks.
func (in ListTasks) UserID() string {
	return in.userID
}

func (in *ListTasks) Validate() error {
	v := validator.New()
	if in.Status != nil && !in.Status.Valid() {
		v.AddError("Status", "Status is invalid")
	}
	if in.Priority != nil && !in.Priority.Valid() {
		v.AddError("Priority", "Priority is invalid")
	}
	return v.AsError()
}

func validateTaskFields(v *validator.Validator, title, description *string, priority *TaskPriority, status *TaskStatus) {
	if title != nil {
		if *title == "" {
			v.AddError("Title", "Title is required")
		}
		if utf8.RuneCountInString(*title) > maxTaskTitleLength {
			v.AddError("Title", "Title must be at most 200 characters")
		}
	}
	if description != nil && utf8.RuneCountInString(*description) > maxTaskDescriptionLength {
		v.AddError("Description", "Description must be at most 5000 characters")
	}
	if priority != nil && !priority.Valid() {
		v.AddError("Priority", "Priority is invalid")
	}
	if status != nil && !status.Valid() {
		v.AddError("Status", "Status is invalid")
	}
}
