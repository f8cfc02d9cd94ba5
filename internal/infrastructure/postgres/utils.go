package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation en PostgreSQL.
const codigoUnicoViolado = "23505"

// isUniqueViolation indica si el error proviene de un constraint UNIQUE,
// como el de numero_documento en oltp_ventas.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUnicoViolado
}
