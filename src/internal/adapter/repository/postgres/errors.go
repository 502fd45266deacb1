package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// DatabaseMessage returns the message raised by the database server (RAISE EXCEPTION text,
// constraint violations, ...). ok is false for client-side failures such as refused connections.
func DatabaseMessage(err error) (message string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message, true
	}

	return "", false
}
