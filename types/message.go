package types

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/validator"
)

const MaxMessageBodyLength = 2000

type MessageType string

const (
	MessageTypeUser   MessageType = "user_message"
	MessageTypeAdmin  MessageType = "admin_message"
	MessageTypeSystem MessageType = "system"
)

func (t MessageType) String() string {
	return string(t)
}

type Message struct {
	ID          string      `json:"id" db:"id"`
	SenderID    string      `json:"senderID" db:"sender_id"`
	RecipientID string      `json:"recipientID" db:"recipient_id"`
	Body        string      `json:"body" db:"body"`
	Type        MessageType `json:"type" db:"message_type"`
	Read        bool        `json:"read" db:"read"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`

	Sender *MessageSender `json:"sender,omitempty" db:"sender"`
}

// MessageSender is the resolved identity of a message sender.
type MessageSender struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// PartnerOf returns the other party of the message from userID's side.
func (m Message) PartnerOf(userID string) string {
	if m.SenderID == userID {
		return m.RecipientID
	}
	return m.SenderID
}

// Between reports whether the message was exchanged by a and b,
// in any direction.
func (m Message) Between(a, b string) bool {
	return (m.SenderID == a && m.RecipientID == b) ||
		(m.SenderID == b && m.RecipientID == a)
}

// After reports whether m sorts after other in conversation order:
// creation time first, ID to break ties.
func (m Message) After(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.After(other.CreatedAt)
	}
	return m.ID > other.ID
}

type SendMessage struct {
	RecipientID string
	Body        string
}

func (in *SendMessage) Validate() error {
	v := validator.New()

	in.Body = strings.TrimSpace(in.Body)

	if !id.Valid(in.RecipientID) {
		v.AddError("RecipientID", "Recipient ID is invalid")
	}
	if in.Body == "" {
		v.AddError("Body", "Message can't be empty")
	}
	if utf8.RuneCountInString(in.Body) > MaxMessageBodyLength {
		v.AddError("Body", "Message must be at most 2000 characters")
	}

	return v.AsError()
}

// CreateMessage is the storage level insert of a validated message.
type CreateMessage struct {
	SenderID    string
	RecipientID string
	Body        string
	Type        MessageType
}

type ListMessages struct {
	PartnerID string

	loggedInUserID string
}

func (in *ListMessages) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in ListMessages) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *ListMessages) Validate() error {
	v := validator.New()
	if !id.Valid(in.PartnerID) {
		v.AddError("PartnerID", "Partner ID is invalid")
	}
	return v.AsError()
}

type MarkMessagesAsRead struct {
	PartnerID string

	loggedInUserID string
}

func (in *MarkMessagesAsRead) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in MarkMessagesAsRead) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *MarkMessagesAsRead) Validate() error {
	v := validator.New()
	if !id.Valid(in.PartnerID) {
		v.AddError("PartnerID", "Partner ID is invalid")
	}
	return v.AsError()
}

type RetrieveMessage struct {
	MessageID string
}

func (in *RetrieveMessage) Validate() error {
	v := validator.New()
	if !id.Valid(in.MessageID) {
		v.AddError("MessageID", "Message ID is invalid")
	}
	return v.AsError()
}

type DeleteMessage struct {
	MessageID string
}

func (in *DeleteMessage) Validate() error {
	v := validator.New()
	if !id.Valid(in.MessageID) {
		v.AddError("MessageID", "Message ID is invalid")
	}
	return v.AsError()
}
