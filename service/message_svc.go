package service

import (
	"context"
	"fmt"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/metrics"
	"github.com/nicolasparada/smarttask/textutil"
	"github.com/nicolasparada/smarttask/types"
)

const notificationPreviewLength = 50

var (
	ErrSelfMessage         = errs.NewInvalidArgumentError("RecipientID", "You can't message yourself")
	ErrGuestSender         = errs.NewInvalidArgumentError("RecipientID", "Guests can't send messages")
	ErrGuestRecipient      = errs.NewInvalidArgumentError("RecipientID", "Only admins can message guest accounts")
	ErrIneligibleRecipient = errs.NewInvalidArgumentError("RecipientID", "You can't message this user")
)

// SendMessage delivers a direct message from the logged-in user.
// The recipient gets a new_message notification and both participants
// a realtime event. Neither side effect can fail the send.
func (svc *Service) SendMessage(ctx context.Context, in types.SendMessage) (types.Message, error) {
	var out types.Message

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if in.RecipientID == loggedInUser.ID {
		return out, ErrSelfMessage
	}

	if loggedInUser.Role == types.RoleGuest {
		return out, ErrGuestSender
	}

	recipient, err := svc.UserDirectory.User(ctx, in.RecipientID)
	if err != nil {
		return out, err
	}

	if recipient.Role == types.RoleGuest && !loggedInUser.IsAdmin() {
		return out, ErrGuestRecipient
	}

	// Admins may always reach guests, even outside the matrix.
	if svc.StrictMessaging && recipient.Role != types.RoleGuest && !svc.Policy.Eligible(loggedInUser.Role, recipient.Role) {
		return out, ErrIneligibleRecipient
	}

	msgType := types.MessageTypeUser
	if loggedInUser.IsAdmin() {
		msgType = types.MessageTypeAdmin
	}

	created, err := svc.MessageStore.CreateMessage(ctx, types.CreateMessage{
		SenderID:    loggedInUser.ID,
		RecipientID: recipient.ID,
		Body:        in.Body,
		Type:        msgType,
	})
	if err != nil {
		return out, err
	}

	out = types.Message{
		ID:          created.ID,
		SenderID:    loggedInUser.ID,
		RecipientID: recipient.ID,
		Body:        in.Body,
		Type:        msgType,
		CreatedAt:   created.CreatedAt,
		Sender: &types.MessageSender{
			ID:       loggedInUser.ID,
			FullName: loggedInUser.FullName,
			Role:     loggedInUser.Role,
		},
	}

	metrics.MessagesSent.WithLabelValues(msgType.String()).Inc()

	svc.notify(ctx, types.CreateNotification{
		UserID:    recipient.ID,
		Type:      types.NotificationTypeNewMessage,
		Message:   fmt.Sprintf("New message from %s: %s", loggedInUser.FullName, textutil.Preview(in.Body, notificationPreviewLength)),
		RelatedID: &out.ID,
	})

	if svc.Hub != nil {
		if err := svc.Hub.Publish(out); err != nil {
			svc.Logger.Error("could not publish message", "error", err, "message_id", out.ID)
		}
	}

	return out, nil
}

// Messages returns the conversation with the given partner in order.
func (svc *Service) Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	return svc.MessageStore.Messages(ctx, in)
}

// MarkMessagesAsRead marks as read every message the partner
// sent to the logged-in user.
func (svc *Service) MarkMessagesAsRead(ctx context.Context, in types.MarkMessagesAsRead) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	return svc.MessageStore.MarkMessagesAsRead(ctx, in)
}

// Message is visible to its participants and to admins.
func (svc *Service) Message(ctx context.Context, in types.RetrieveMessage) (types.Message, error) {
	var out types.Message

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	out, err := svc.MessageStore.MessageWithSender(ctx, in.MessageID)
	if err != nil {
		return out, err
	}

	if !loggedInUser.IsAdmin() && out.SenderID != loggedInUser.ID && out.RecipientID != loggedInUser.ID {
		return types.Message{}, errs.NewNotFoundError("message not found")
	}

	return out, nil
}

// DeleteMessage lets senders and admins remove a message.
func (svc *Service) DeleteMessage(ctx context.Context, in types.DeleteMessage) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	msg, err := svc.MessageStore.MessageWithSender(ctx, in.MessageID)
	if err != nil {
		return err
	}

	if !loggedInUser.IsAdmin() && msg.SenderID != loggedInUser.ID {
		return errs.NewNotFoundError("message not found")
	}

	return svc.MessageStore.DeleteMessage(ctx, in.MessageID)
}

// notify creates a notification and only logs failures.
func (svc *Service) notify(ctx context.Context, in types.CreateNotification) {
	if _, err := svc.NotificationStore.CreateNotification(ctx, in); err != nil {
		svc.Logger.Error("could not create notification", "error", err, "type", in.Type, "user_id", in.UserID)
		return
	}

	metrics.NotificationsCreated.WithLabelValues(in.Type.String()).Inc()
}
