package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_org_email_key"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", unique)),
		"debe detectar el código aunque el error venga envuelto")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}),
		"otras violaciones de integridad no son duplicados")
	assert.False(t, isUniqueViolation(errors.New(`fila con texto "23505" en una columna`)),
		"el código solo vale dentro de un PgError, no en el texto del mensaje")
	assert.False(t, isUniqueViolation(nil))
}
