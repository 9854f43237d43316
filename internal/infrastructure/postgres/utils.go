package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reporta si err (o algún error envuelto) es una violación
// de constraint único de PostgreSQL (código 23505). Solo cuenta el código del
// PgError; el texto del mensaje no se inspecciona.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
