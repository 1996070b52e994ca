package people

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrOwnerMissing is returned when storage rejects an address because its
// owning person row no longer exists.
var ErrOwnerMissing = errors.New("owning person does not exist")

const pgForeignKeyViolation = "23503"

// mapWriteError turns driver foreign-key violations into ErrOwnerMissing and
// returns every other error unchanged.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.TrimSpace(pgErr.Code) == pgForeignKeyViolation {
		return errors.Join(ErrOwnerMissing, err)
	}
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed") {
		return errors.Join(ErrOwnerMissing, err)
	}
	return err
}
