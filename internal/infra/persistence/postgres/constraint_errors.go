package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

// Helper functions for PostgreSQL error checking. GORM's translated errors are
// checked first, falling back to the SQLSTATE in the driver message.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateUniqueViolation) || strings.Contains(errMsg, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}
