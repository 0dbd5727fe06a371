package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories classify.
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgStringTooLong        = "22001"
	pgNumericOutOfRange    = "22003"
	pgInvalidTextEncoding  = "22021"
	pgProgramLimitExceeded = "54000"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, pgCheckViolation)
}

// isValueOutOfRange reports whether the store rejected an input value itself rather than failing.
func isValueOutOfRange(err error) bool {
	return hasSQLState(err, pgStringTooLong) ||
		hasSQLState(err, pgNumericOutOfRange) ||
		hasSQLState(err, pgInvalidTextEncoding) ||
		hasSQLState(err, pgProgramLimitExceeded)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
