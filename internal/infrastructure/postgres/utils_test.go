package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión cerrada")))
}

func TestSchema_UnaTablaPorColeccion(t *testing.T) {
	all := strings.Join(schemaStatements, "\n")
	for _, name := range repository.Collections() {
		assert.True(t,
			strings.Contains(all, "CREATE TABLE IF NOT EXISTS "+name+" (") ||
				strings.Contains(all, `CREATE TABLE IF NOT EXISTS "`+name+`" (`),
			name)
	}
	assert.Contains(t, all, "UNIQUE (user_id, sku)")
}
