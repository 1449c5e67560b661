package types

import (
	"time"

	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/validator"
)

type Notification struct {
	ID        string           `json:"id" db:"id"`
	UserID    string           `json:"userID" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	RelatedID *string          `json:"relatedID" db:"related_id"`
	Read      bool             `json:"read" db:"read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	// MessageRecord is only set on enriched new_message notifications.
	MessageRecord *Message `json:"messageRecord,omitempty" db:"-"`
}

type NotificationType string

func (t NotificationType) String() string {
	return string(t)
}

const (
	NotificationTypeNewMessage   NotificationType = "new_message"
	NotificationTypeTaskAssigned NotificationType = "task_assigned"
	NotificationTypeTaskUpdate   NotificationType = "task_update"
	NotificationTypeRoleUpdate   NotificationType = "role_update"
	NotificationTypeApproval     NotificationType = "approval"
	NotificationTypeRegistration NotificationType = "registration"
)

// Notifications is a user's notification list with its badge counters.
type Notifications struct {
	Items          []Notification `json:"items"`
	Unread         int            `json:"unread"`
	UnreadMessages int            `json:"unreadMessages"`
}

// CountUnread fills the badge counters from Items.
func (nn *Notifications) CountUnread() {
	nn.Unread, nn.UnreadMessages = 0, 0
	for _, n := range nn.Items {
		if n.Read {
			continue
		}
		nn.Unread++
		if n.Type == NotificationTypeNewMessage {
			nn.UnreadMessages++
		}
	}
}

type CreateNotification struct {
	UserID    string
	Type      NotificationType
	Message   string
	RelatedID *string
}

type ListNotifications struct {
	userID string
}

func (in *ListNotifications) SetUserID(userID string) {
	in.userID = userID
}

func (in ListNotifications) UserID() string {
	return in.userID
}

type ReadNotification struct {
	NotificationID string

	userID string
}

func (in *ReadNotification) SetUserID(userID string) {
	in.userID = userID
}

func (in ReadNotification) UserID() string {
	return in.userID
}

func (in *ReadNotification) Validate() error {
	v := validator.New()
	if !id.Valid(in.NotificationID) {
		v.AddError("NotificationID", "Notification ID is invalid")
	}
	return v.AsError()
}
