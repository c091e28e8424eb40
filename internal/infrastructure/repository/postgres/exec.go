package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ErrNoRowsAffected is returned when an update targets a missing row.
var ErrNoRowsAffected = errors.New("no rows affected")

func execAffectingOne(ctx context.Context, db execer, op, id, query string, args []any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s id=%s: %w", op, id, ErrNoRowsAffected)
	}
	return nil
}
