package service

import (
	"context"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/metrics"
	"github.com/nicolasparada/smarttask/types"
)

// UnreadMessageCount is the badge count of unread messages.
// It never fails: on error the count degrades to zero.
func (svc *Service) UnreadMessageCount(ctx context.Context) types.Partial[int] {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return types.Degraded(0, errs.Unauthenticated)
	}

	count, err := svc.MessageStore.CountUnreadMessages(ctx, loggedInUser.ID)
	if err != nil {
		svc.Logger.Error("could not count unread messages", "error", err, "user_id", loggedInUser.ID)
		metrics.Degraded.WithLabelValues("unread_messages").Inc()
		return types.Degraded(0, err)
	}

	return types.Complete(count)
}
