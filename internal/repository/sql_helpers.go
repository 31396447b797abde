package repository

import (
	"errors"
	"fmt"

	vferrors "visionflow/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// tagStoreError distinguishes errors the database reported (surfaced to
// clients as 400s) from transport failures reaching it (500s).
func tagStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s", vferrors.ErrStore, pgErr.Message)
	}
	return err
}
