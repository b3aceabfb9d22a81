package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// localDate ancla una columna DATE (pgx la devuelve a medianoche UTC) a la zona local,
// donde se interpretan los vencimientos.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// unidadLabel etiqueta visible de la unidad a partir de las columnas torre y numero.
func unidadLabel(torre, numero *string) string {
	if numero == nil {
		return ""
	}
	u := entity.Unidad{Numero: *numero}
	if torre != nil {
		u.Torre = *torre
	}
	return u.Label()
}
