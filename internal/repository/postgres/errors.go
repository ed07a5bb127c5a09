package postgres

import (
	"errors"
	"wallet-service/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps Postgres failures onto domain kinds. Errors with no
// domain meaning are returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.LockNotAvailable, pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure:
		return model.NewLockConflictError(err)
	case pgerrcode.CheckViolation, pgerrcode.UniqueViolation, pgerrcode.NotNullViolation,
		pgerrcode.NumericValueOutOfRange, pgerrcode.ForeignKeyViolation:
		return model.NewStorageError(err)
	default:
		return err
	}
}
