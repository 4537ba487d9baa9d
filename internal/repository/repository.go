// internal/repository/repository.go
package repository

import (
	"errors"
	"strings"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// mapSetWriteError translates a failed entitlement-set insert. A foreign key
// violation means either the module or the set's owner does not exist.
func mapSetWriteError(err error, ownerNotFound error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		if strings.HasSuffix(pgErr.ConstraintName, "_module") {
			return domain.ErrModuleNotFound
		}
		return ownerNotFound
	}
	return nil
}
