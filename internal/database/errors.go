package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Closed set of error kinds carried from the data layer to the handlers, so
// status-code mapping is a total function instead of message matching.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrInUse              = errors.New("record is referenced by other records")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// translate maps pgx's no-rows sentinel and Postgres constraint violations
// onto the error-kind set; anything else passes through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return ErrInUse
		}
	}
	return err
}
