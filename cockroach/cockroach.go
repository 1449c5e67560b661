package cockroach

import (
	"embed"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicolasparada/go-db"

	"github.com/nicolasparada/smarttask/errs"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

type Cockroach struct {
	db *db.DB
}

func New(pool *pgxpool.Pool) *Cockroach {
	return &Cockroach{
		db: db.New(pool),
	}
}

func where(filters []string) string {
	if len(filters) == 0 {
		return " "
	}

	return " WHERE " + strings.Join(filters, " AND ") + " "
}

// sqlErr wraps err with msg and marks connection level failures
// as unavailable so callers can tell them apart from bad queries.
func sqlErr(msg string, err error) error {
	err = fmt.Errorf("%s: %w", msg, err)

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) || pgconn.Timeout(err) {
		return errs.NewUnavailableError("database unavailable", err)
	}

	return err
}
