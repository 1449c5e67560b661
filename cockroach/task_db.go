package cockroach

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-db"

	"github.com/nicolasparada/smarttask/errs"
	"github.com/nicolasparada/smarttask/id"
	"github.com/nicolasparada/smarttask/types"
)

func (c *Cockroach) CreateTask(ctx context.Context, in types.CreateTask) (types.Created, error) {
	const q = `
		INSERT INTO tasks (id, user_id, created_by, title, description, priority, status, due_date)
		VALUES (@task_id, @user_id, @created_by, @title, @description, @priority, @status, @due_date)
		RETURNING id, created_at
	`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"task_id":     id.Generate(),
		"user_id":     in.UserID,
		"created_by":  in.CreatedBy(),
		"title":       in.Title,
		"description": in.Description,
		"priority":    in.Priority,
		"status":      in.Status,
		"due_date":    in.DueDate,
	}}, pgx.RowToStructByNameLax[types.Created])
	if db.IsForeignKeyViolationError(err, "user_id") {
		return out, errs.NewNotFoundError("assignee not found")
	}

	if err != nil {
		return out, sqlErr("sql insert task", err)
	}

	return out, nil
}

func (c *Cockroach) Task(ctx context.Context, taskID string) (types.Task, error) {
	const q = `SELECT tasks.* FROM tasks WHERE tasks.id = @task_id`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"task_id": taskID,
	}}, pgx.RowToStructByNameLax[types.Task])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("task not found")
	}

	if err != nil {
		return out, sqlErr("sql select task", err)
	}

	return out, nil
}

func (c *Cockroach) Tasks(ctx context.Context, in types.ListTasks) ([]types.Task, error) {
	var filters []string
	args := pgx.StrictNamedArgs{}

	if in.UserID() != "" {
		filters = append(filters, "tasks.user_id = @user_id")
		args["user_id"] = in.UserID()
	}

	if in.Status != nil {
		filters = append(filters, "tasks.status = @status")
		args["status"] = *in.Status
	}

	if in.Priority != nil {
		filters = append(filters, "tasks.priority = @priority")
		args["priority"] = *in.Priority
	}

	q := `SELECT tasks.* FROM tasks` + where(filters)
	if in.RecentlyUpdated {
		q += `ORDER BY tasks.updated_at DESC, tasks.id DESC`
	} else {
		q += `ORDER BY tasks.created_at DESC, tasks.id DESC`
	}

	if in.Limit > 0 {
		q += ` LIMIT @limit`
		args["limit"] = in.Limit
	}

	rows, err := c.db.Query(ctx, q, args)
	if err != nil {
		return nil, sqlErr("sql select tasks", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Task])
	if err != nil {
		return nil, sqlErr("sql collect tasks", err)
	}

	return out, nil
}

// UpdateTask applies the non-nil fields of in and returns the updated row.
func (c *Cockroach) UpdateTask(ctx context.Context, in types.UpdateTask) (types.Task, error) {
	sets := []string{"updated_at = now()"}
	args := pgx.StrictNamedArgs{
		"task_id": in.TaskID,
	}

	if in.Title != nil {
		sets = append(sets, "title = @title")
		args["title"] = *in.Title
	}

	if in.Description != nil {
		sets = append(sets, "description = @description")
		args["description"] = *in.Description
	}

	if in.Priority != nil {
		sets = append(sets, "priority = @priority")
		args["priority"] = *in.Priority
	}

	if in.Status != nil {
		sets = append(sets, "status = @status")
		args["status"] = *in.Status
	}

	if in.DueDate != nil {
		sets = append(sets, "due_date = @due_date")
		args["due_date"] = *in.DueDate
	}

	q := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = @task_id RETURNING *`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{args}, pgx.RowToStructByNameLax[types.Task])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("task not found")
	}

	if err != nil {
		return out, sqlErr("sql update task", err)
	}

	return out, nil
}

func (c *Cockroach) DeleteTask(ctx context.Context, taskID string) error {
	const q = `DELETE FROM tasks WHERE id = @task_id`

	tag, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"task_id": taskID,
	})
	if err != nil {
		return sqlErr("sql delete task", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("task not found")
	}

	return nil
}
