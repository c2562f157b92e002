package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soaresgus/community-backend/internal/app/user"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation (code 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// translate maps driver errors onto the user package sentinels.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return user.ErrNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, user.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
