package cockroach

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"

	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/types"
)

func (c *Cockroach) CreateNotification(ctx context.Context, in types.CreateNotification) (types.Created, error) {
	const q = `
		INSERT INTO notifications (id, user_id, type, message, related_id)
		VALUES (@notification_id, @user_id, @type, @message, @related_id)
		RETURNING id, created_at
	`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"notification_id": id.Generate(),
		"user_id":         in.UserID,
		"type":            in.Type,
		"message":         in.Message,
		"related_id":      in.RelatedID,
	}}, pgx.RowToStructByNameLax[types.Created])
	if err != nil {
		return out, sqlErr("sql insert notification", err)
	}

	return out, nil
}

func (c *Cockroach) Notifications(ctx context.Context, in types.ListNotifications) ([]types.Notification, error) {
	const q = `
		SELECT notifications.*
		FROM notifications
		WHERE notifications.user_id = @user_id
		ORDER BY notifications.created_at DESC, notifications.id DESC
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"user_id": in.UserID(),
	})
	if err != nil {
		return nil, sqlErr("sql select notifications", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Notification])
	if err != nil {
		return nil, sqlErr("sql collect notifications", err)
	}

	return out, nil
}

func (c *Cockroach) ReadNotification(ctx context.Context, in types.ReadNotification) error {
	const q = `
		UPDATE notifications
		SET read = true
		WHERE id = @notification_id AND user_id = @user_id
	`

	_, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"notification_id": in.NotificationID,
		"user_id":         in.UserID(),
	})
	if err != nil {
		return sqlErr("sql update notification read", err)
	}

	return nil
}

func (c *Cockroach) ReadAllNotifications(ctx context.Context, userID string) error {
	const q = `
		UPDATE notifications
		SET read = true
		WHERE user_id = @user_id AND read = false
	`

	_, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"user_id": userID,
	})
	if err != nil {
		return sqlErr("sql update all notifications read", err)
	}

	return nil
}

func (c *Cockroach) RecentNotifications(ctx context.Context, limit uint) ([]types.Notification, error) {
	const q = `
		SELECT notifications.*
		FROM notifications
		ORDER BY notifications.created_at DESC, notifications.id DESC
		LIMIT @limit
	`

	out, err := pgxutil.Select(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"limit": limit,
	}}, pgx.RowToStructByNameLax[types.Notification])
	if err != nil {
		return nil, sqlErr("sql select recent notifications", err)
	}

	return out, nil
}
