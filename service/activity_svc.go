package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/textutil"
	"github.com/nicolasparada/smarttask/types"
)

const activityPreviewLength = 80

// Activity merges recent tasks, notifications and messages into
// a single timeline, newest first. Admin only.
func (svc *Service) Activity(ctx context.Context, in types.ListActivity) ([]types.ActivityItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if !loggedInUser.IsAdmin() {
		return nil, errAdminOnly
	}

	var (
		tasks         []types.Task
		notifications []types.Notification
		messages      []types.Message
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tasks, err = svc.TaskStore.Tasks(gctx, types.ListTasks{All: true, Limit: in.Limit, RecentlyUpdated: true})
		return err
	})

	g.Go(func() error {
		var err error
		notifications, err = svc.NotificationStore.RecentNotifications(gctx, in.Limit)
		return err
	})

	g.Go(func() error {
		var err error
		messages, err = svc.MessageStore.RecentMessages(gctx, in.Limit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]types.ActivityItem, 0, len(tasks)+len(notifications)+len(messages))

	for _, t := range tasks {
		out = append(out, types.ActivityItem{
			Kind:      types.ActivityKindTask,
			ID:        t.ID,
			Text:      t.Title,
			Detail:    fmt.Sprintf("%s, %s priority", t.Status, t.Priority),
			Timestamp: t.UpdatedAt,
		})
	}

	for _, n := range notifications {
		out = append(out, types.ActivityItem{
			Kind:      types.ActivityKindNotification,
			ID:        n.ID,
			Text:      n.Message,
			Detail:    n.Type.String(),
			Timestamp: n.CreatedAt,
		})
	}

	for _, m := range messages {
		from := m.SenderID
		if m.Sender != nil {
			from = m.Sender.FullName
		}
		out = append(out, types.ActivityItem{
			Kind:      types.ActivityKindMessage,
			ID:        m.ID,
			Text:      textutil.Preview(m.Body, activityPreviewLength),
			Detail:    "from " + from,
			Timestamp: m.CreatedAt,
		})
	}

	slices.SortStableFunc(out, func(a, b types.ActivityItem) int {
		return cmp.Or(
			b.Timestamp.Compare(a.Timestamp),
			cmp.Compare(a.ID, b.ID),
		)
	})

	if uint(len(out)) > in.Limit {
		out = out[:in.Limit]
	}

	return out, nil
}
