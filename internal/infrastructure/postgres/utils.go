package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Índices únicos del esquema con significado propio para el dominio.
const (
	constraintUserEmail       = "usuarios_correo_key"
	constraintSingleAdmin     = "usuarios_unico_admin_principal"
	constraintSpaActiveName   = "spas_nombre_activo_key"
	constraintSpaOwner        = "spas_admin_spa_id_key"
	constraintSpaServicePair  = "spa_servicios_pkey"
	constraintSpaMaterialPair = "spa_materiales_pkey"
)

// uniqueViolation informa si err es una violación de constraint único (23505) y el nombre del constraint.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == "23505" // unique_violation
	}
	return "", strings.Contains(err.Error(), "23505")
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	_, ok := uniqueViolation(err)
	return ok
}
