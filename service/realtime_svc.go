package service

import (
	"context"
	"errors"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/realtime"
	"github.com/nicolasparada/smarttask/types"
)

var errRealtimeDisabled = errors.New("realtime hub not configured")

// SubscribeConversations delivers every message the logged-in user
// sends or receives from now on.
// Callers own the returned handle and must Unsubscribe it.
func (svc *Service) SubscribeConversations(ctx context.Context, onEvent func(types.Message)) (*realtime.Subscription, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if svc.Hub == nil {
		return nil, errRealtimeDisabled
	}

	return svc.Hub.SubscribeConversations(loggedInUser.ID, onEvent)
}

// SubscribeConversation delivers only the messages exchanged with partnerID.
func (svc *Service) SubscribeConversation(ctx context.Context, partnerID string, onEvent func(types.Message)) (*realtime.Subscription, error) {
	if !id.Valid(partnerID) {
		return nil, errs.NewInvalidArgumentError("PartnerID", "Partner ID is invalid")
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if svc.Hub == nil {
		return nil, errRealtimeDisabled
	}

	return svc.Hub.SubscribeConversation(loggedInUser.ID, partnerID, onEvent)
}

func (svc *Service) Unsubscribe(sub *realtime.Subscription) error {
	if svc.Hub == nil {
		return nil
	}
	return svc.Hub.Unsubscribe(sub)
}
