package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/types"
)

const enrichConcurrency = 8

// Notifications lists the logged-in user's notifications, newest first,
// with new_message items carrying the message they point to.
func (svc *Service) Notifications(ctx context.Context) (types.Notifications, error) {
	var out types.Notifications

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	var in types.ListNotifications
	in.SetUserID(loggedInUser.ID)

	items, err := svc.NotificationStore.Notifications(ctx, in)
	if err != nil {
		return out, err
	}

	out.Items = EnrichNotifications(ctx, items, svc.MessageStore.MessageWithSender, svc.Logger)
	out.CountUnread()

	return out, nil
}

// EnrichNotifications attaches the referenced message to every new_message
// notification with a related ID. A failed lookup leaves that item as is.
// The returned slice is a copy; items is not modified.
func EnrichNotifications(
	ctx context.Context,
	items []types.Notification,
	lookup func(ctx context.Context, messageID string) (types.Message, error),
	logger *slog.Logger,
) []types.Notification {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	out := make([]types.Notification, len(items))
	copy(out, items)

	var g errgroup.Group
	g.SetLimit(enrichConcurrency)

	for i, n := range out {
		if n.Type != types.NotificationTypeNewMessage || n.RelatedID == nil || *n.RelatedID == "" {
			continue
		}

		g.Go(func() error {
			msg, err := lookup(ctx, *n.RelatedID)
			if err != nil {
				logger.Debug("could not enrich notification", "error", err, "notification_id", n.ID)
				return nil
			}

			out[i].MessageRecord = &msg
			return nil
		})
	}

	_ = g.Wait()

	return out
}

func (svc *Service) ReadNotification(ctx context.Context, in types.ReadNotification) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	in.SetUserID(loggedInUser.ID)

	return svc.NotificationStore.ReadNotification(ctx, in)
}

func (svc *Service) ReadAllNotifications(ctx context.Context) error {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	return svc.NotificationStore.ReadAllNotifications(ctx, loggedInUser.ID)
}
