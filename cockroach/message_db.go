package cockroach

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-db"

	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/types"
)

// Senders are left joined: a deleted account leaves sender NULL.
const sqlMessageWithSender = `
	SELECT messages.*,
		CASE WHEN users.id IS NULL THEN NULL ELSE json_build_object(
			'id', users.id,
			'fullName', users.full_name,
			'role', users.role
		) END AS sender
	FROM messages
	LEFT JOIN users ON users.id = messages.sender_id
`

func (c *Cockroach) CreateMessage(ctx context.Context, in types.CreateMessage) (types.Created, error) {
	const q = `
		INSERT INTO messages (id, sender_id, recipient_id, body, message_type)
		VALUES (@message_id, @sender_id, @recipient_id, @body, @message_type)
		RETURNING id, created_at
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"message_id":   id.Generate(),
		"sender_id":    in.SenderID,
		"recipient_id": in.RecipientID,
		"body":         in.Body,
		"message_type": in.Type,
	})
	if err != nil {
		return types.Created{}, sqlErr("sql insert message", err)
	}

	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.Created])
	if err != nil {
		return out, sqlErr("sql collect inserted message", err)
	}

	return out, nil
}

// Messages returns the whole two-party history in conversation order.
func (c *Cockroach) Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
	q := sqlMessageWithSender + `
		WHERE (messages.sender_id = @user_id AND messages.recipient_id = @partner_id)
			OR (messages.sender_id = @partner_id AND messages.recipient_id = @user_id)
		ORDER BY messages.created_at ASC, messages.id ASC
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"user_id":    in.LoggedInUserID(),
		"partner_id": in.PartnerID,
	})
	if err != nil {
		return nil, sqlErr("sql select messages", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return nil, sqlErr("sql collect messages", err)
	}

	return out, nil
}

// MessagesOfUser returns every message the user sent or received,
// newest first.
func (c *Cockroach) MessagesOfUser(ctx context.Context, userID string) ([]types.Message, error) {
	const q = `
		SELECT messages.*
		FROM messages
		WHERE messages.sender_id = @user_id OR messages.recipient_id = @user_id
		ORDER BY messages.created_at DESC, messages.id DESC
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"user_id": userID,
	})
	if err != nil {
		return nil, sqlErr("sql select user messages", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return nil, sqlErr("sql collect user messages", err)
	}

	return out, nil
}

func (c *Cockroach) MarkMessagesAsRead(ctx context.Context, in types.MarkMessagesAsRead) error {
	const q = `
		UPDATE messages
		SET read = true
		WHERE recipient_id = @user_id
			AND sender_id = @partner_id
			AND read = false
	`

	_, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"user_id":    in.LoggedInUserID(),
		"partner_id": in.PartnerID,
	})
	if err != nil {
		return sqlErr("sql update messages read", err)
	}

	return nil
}

func (c *Cockroach) MessageWithSender(ctx context.Context, messageID string) (types.Message, error) {
	q := sqlMessageWithSender + `WHERE messages.id = @message_id`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"message_id": messageID,
	}}, pgx.RowToStructByNameLax[types.Message])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("message not found")
	}

	if err != nil {
		return out, sqlErr("sql select message", err)
	}

	return out, nil
}

func (c *Cockroach) CountUnreadMessages(ctx context.Context, userID string) (int, error) {
	const q = `
		SELECT count(*)
		FROM messages
		WHERE recipient_id = @user_id AND read = false
	`

	count, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"user_id": userID,
	}}, pgx.RowTo[int])
	if err != nil {
		return 0, sqlErr("sql count unread messages", err)
	}

	return count, nil
}

func (c *Cockroach) DeleteMessage(ctx context.Context, messageID string) error {
	const q = `DELETE FROM messages WHERE id = @message_id`

	tag, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"message_id": messageID,
	})
	if err != nil {
		return sqlErr("sql delete message", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("message not found")
	}

	return nil
}

// RecentMessages lists the latest messages across all users.
func (c *Cockroach) RecentMessages(ctx context.Context, limit uint) ([]types.Message, error) {
	q := sqlMessageWithSender + `
		ORDER BY messages.created_at DESC, messages.id DESC
		LIMIT @limit
	`

	out, err := pgxutil.Select(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"limit": limit,
	}}, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return nil, sqlErr("sql select recent messages", err)
	}

	return out, nil
}
