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

const sqlUserCols = `
	  users.id
	, users.full_name
	, users.email
	, users.role
	, users.status
	, users.created_at
	, users.updated_at
`

func (c *Cockroach) CreateUser(ctx context.Context, in types.CreateUser) (types.Created, error) {
	const q = `
		INSERT INTO users (id, full_name, email, role, status)
		VALUES (@user_id, @full_name, @email, @role, @status)
		RETURNING id, created_at
	`

	out, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"user_id":   id.Generate(),
		"full_name": in.FullName,
		"email":     in.Email,
		"role":      in.Role,
		"status":    in.Status,
	}}, pgx.RowToStructByNameLax[types.Created])
	if db.IsUniqueViolationError(err, "email") {
		return out, errs.NewAlreadyExistsError("Email", "Email taken")
	}

	if err != nil {
		return out, sqlErr("sql insert user", err)
	}

	return out, nil
}

func (c *Cockroach) User(ctx context.Context, userID string) (types.User, error) {
	q := `SELECT ` + sqlUserCols + ` FROM users WHERE id = @user_id`

	user, err := pgxutil.SelectRow(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"user_id": userID,
	}}, pgx.RowToStructByNameLax[types.User])
	if db.IsNotFoundError(err) {
		return user, errs.NewNotFoundError("user not found")
	}

	if err != nil {
		return user, sqlErr("sql select user", err)
	}

	return user, nil
}

// UsersByIDs returns the users that still exist among userIDs.
// Missing IDs are silently skipped.
func (c *Cockroach) UsersByIDs(ctx context.Context, userIDs []string) ([]types.User, error) {
	if len(userIDs) == 0 {
		return []types.User{}, nil
	}

	q := `SELECT ` + sqlUserCols + ` FROM users WHERE id = ANY(@user_ids)`

	out, err := pgxutil.Select(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"user_ids": userIDs,
	}}, pgx.RowToStructByNameLax[types.User])
	if err != nil {
		return nil, sqlErr("sql select users by ids", err)
	}

	return out, nil
}

func (c *Cockroach) UsersByRoles(ctx context.Context, roles []types.Role) ([]types.User, error) {
	if len(roles) == 0 {
		return []types.User{}, nil
	}

	rr := make([]string, len(roles))
	for i, r := range roles {
		rr[i] = string(r)
	}

	q := `SELECT ` + sqlUserCols + ` FROM users WHERE role = ANY(@roles) ORDER BY full_name, id`

	out, err := pgxutil.Select(ctx, c.db, q, []any{pgx.StrictNamedArgs{
		"roles": rr,
	}}, pgx.RowToStructByNameLax[types.User])
	if err != nil {
		return nil, sqlErr("sql select users by roles", err)
	}

	return out, nil
}

func (c *Cockroach) Users(ctx context.Context, in types.ListUsers) ([]types.User, error) {
	var filters []string
	args := pgx.StrictNamedArgs{}

	if in.Role != nil {
		filters = append(filters, "users.role = @role")
		args["role"] = *in.Role
	}

	if in.Status != nil {
		filters = append(filters, "users.status = @status")
		args["status"] = *in.Status
	}

	q := `SELECT ` + sqlUserCols + ` FROM users` + where(filters) + `ORDER BY users.full_name, users.id`

	rows, err := c.db.Query(ctx, q, args)
	if err != nil {
		return nil, sqlErr("sql select users", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.User])
	if err != nil {
		return nil, sqlErr("sql collect users", err)
	}

	return out, nil
}

func (c *Cockroach) UpdateUser(ctx context.Context, in types.UpdateUser) error {
	const q = `
		UPDATE users
		SET role = @role,
			status = @status,
			updated_at = now()
		WHERE id = @user_id
	`

	tag, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"user_id": in.UserID,
		"role":    in.Role,
		"status":  in.Status,
	})
	if err != nil {
		return sqlErr("sql update user", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("user not found")
	}

	return nil
}

// DeletePendingUser removes a user that was never approved.
func (c *Cockroach) DeletePendingUser(ctx context.Context, userID string) error {
	const q = `
		DELETE FROM users
		WHERE id = @user_id AND status = @status
	`

	tag, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"user_id": userID,
		"status":  types.UserStatusPending,
	})
	if err != nil {
		return sqlErr("sql delete pending user", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("pending user not found")
	}

	return nil
}
