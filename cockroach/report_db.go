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

func (c *Cockroach) CreateReport(ctx context.Context, in types.CreateReport) (types.Created, error) {
	const q = `
		INSERT INTO reports (id, user_id, title, content, report_type)
		VALUES (@report_id, @user_id, @title, @content, @report_type)
		RETURNING id, created_at
	`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"report_id":   id.Generate(),
		"user_id":     in.UserID(),
		"title":       in.Title,
		"content":     in.Content,
		"report_type": in.Type,
	}}, pgx.RowToStructByNameLax[types.Created])
	if db.IsForeignKeyViolationError(err, "user_id") {
		return out, errs.NewNotFoundError("user not found")
	}

	if err != nil {
		return out, sqlErr("sql insert report", err)
	}

	return out, nil
}

func (c *Cockroach) Reports(ctx context.Context, in types.ListReports) ([]types.Report, error) {
	var filters []string
	args := pgx.StrictNamedArgs{}

	if in.UserID() != "" {
		filters = append(filters, "reports.user_id = @user_id")
		args["user_id"] = in.UserID()
	}

	if in.Type != nil {
		filters = append(filters, "reports.report_type = @report_type")
		args["report_type"] = *in.Type
	}

	q := `SELECT reports.* FROM reports` + where(filters) + `ORDER BY reports.created_at DESC, reports.id DESC`

	rows, err := c.db.Query(ctx, q, args)
	if err != nil {
		return nil, sqlErr("sql select reports", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Report])
	if err != nil {
		return nil, sqlErr("sql collect reports", err)
	}

	return out, nil
}

// performanceQuery counts per user activity. Each source is grouped
// on its own before joining so counts don't multiply.
const performanceQuery = `
	SELECT
		users.id AS user_id,
		coalesce(t.tasks_total, 0) AS tasks_total,
		coalesce(t.tasks_pending, 0) AS tasks_pending,
		coalesce(t.tasks_in_progress, 0) AS tasks_in_progress,
		coalesce(t.tasks_completed, 0) AS tasks_completed,
		coalesce(r.reports_count, 0) AS reports_count,
		coalesce(sent.messages_sent, 0) AS messages_sent,
		coalesce(received.messages_received, 0) AS messages_received,
		coalesce(received.messages_read, 0) AS messages_read
	FROM users
	LEFT JOIN (
		SELECT user_id,
			count(*) AS tasks_total,
			count(*) FILTER (WHERE status = 'pending') AS tasks_pending,
			count(*) FILTER (WHERE status = 'in_progress') AS tasks_in_progress,
			count(*) FILTER (WHERE status = 'completed') AS tasks_completed
		FROM tasks
		GROUP BY user_id
	) AS t ON t.user_id = users.id
	LEFT JOIN (
		SELECT user_id, count(*) AS reports_count
		FROM reports
		GROUP BY user_id
	) AS r ON r.user_id = users.id
	LEFT JOIN (
		SELECT sender_id, count(*) AS messages_sent
		FROM messages
		GROUP BY sender_id
	) AS sent ON sent.sender_id = users.id
	LEFT JOIN (
		SELECT recipient_id,
			count(*) AS messages_received,
			count(*) FILTER (WHERE read) AS messages_read
		FROM messages
		GROUP BY recipient_id
	) AS received ON received.recipient_id = users.id
`

func (c *Cockroach) UserPerformance(ctx context.Context, userID string) (types.Performance, error) {
	const q = performanceQuery + `WHERE users.id = @user_id`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"user_id": userID,
	}}, pgx.RowToStructByNameLax[types.Performance])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("user not found")
	}

	if err != nil {
		return out, sqlErr("sql select user performance", err)
	}

	return out, nil
}

// Performances lists the counters of every approved user
// holding one of roles.
func (c *Cockroach) Performances(ctx context.Context, roles []types.Role) ([]types.Performance, error) {
	if len(roles) == 0 {
		return []types.Performance{}, nil
	}

	rr := make([]string, len(roles))
	for i, r := range roles {
		rr[i] = string(r)
	}

	const q = performanceQuery + `
		WHERE users.status = 'approved' AND users.role = ANY(@roles)
		ORDER BY users.id
	`

	out, err := pgxutil.Select(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"roles": rr,
	}}, pgx.RowToStructByNameLax[types.Performance])
	if err != nil {
		return nil, sqlErr("sql select performances", err)
	}

	return out, nil
}
