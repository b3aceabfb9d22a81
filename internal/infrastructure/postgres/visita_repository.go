package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ repository.VisitaRepository = (*VisitaRepo)(nil)

const visitaColumns = `
		SELECT v.id, v.residente_id, r.nombre, u.torre, u.numero, v.nombre_visitante, v.documento_visitante,
		       v.entrada_esperada, v.salida_esperada, v.codigo_qr_acceso, v.hora_entrada_real,
		       v.hora_salida_real, v.notas, v.fecha_creacion
		FROM visitas v
		JOIN residentes r ON r.id = v.residente_id
		LEFT JOIN unidades_habitacionales u ON u.id = r.unidad_id`

// VisitaRepo implementación de VisitaRepository (usable con pool o tx).
type VisitaRepo struct {
	q Querier
}

// NewVisitaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitaRepository(q Querier) *VisitaRepo {
	return &VisitaRepo{q: q}
}

// Create persiste la visita. El índice único de codigo_qr_acceso garantiza la unicidad.
func (r *VisitaRepo) Create(ctx context.Context, v *entity.Visita) error {
	query := `
		INSERT INTO visitas (id, residente_id, nombre_visitante, documento_visitante, entrada_esperada,
		                     salida_esperada, codigo_qr_acceso, notas, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.ResidenteID, v.NombreVisitante, v.DocumentoVisitante, v.EntradaEsperada,
		v.SalidaEsperada, v.CodigoQR, v.Notas, v.FechaCreacion,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NewNotFoundError("residente", v.ResidenteID)
		}
		return fmt.Errorf("insert visita: %w", err)
	}
	return nil
}

// GetByCodigoForUpdate obtiene la visita y bloquea su fila (SELECT FOR UPDATE). Un segundo
// canje concurrente espera aquí y luego ve la hora de entrada ya fijada.
func (r *VisitaRepo) GetByCodigoForUpdate(ctx context.Context, codigo string) (*entity.Visita, error) {
	return r.get(ctx, visitaColumns+` WHERE v.codigo_qr_acceso = $1 FOR UPDATE OF v`, codigo)
}

func (r *VisitaRepo) get(ctx context.Context, query, codigo string) (*entity.Visita, error) {
	var (
		v             entity.Visita
		torre, numero *string
	)
	err := r.q.QueryRow(ctx, query, codigo).Scan(
		&v.ID, &v.ResidenteID, &v.ResidenteNombre, &torre, &numero, &v.NombreVisitante, &v.DocumentoVisitante,
		&v.EntradaEsperada, &v.SalidaEsperada, &v.CodigoQR, &v.HoraEntradaReal,
		&v.HoraSalidaReal, &v.Notas, &v.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visita: %w", err)
	}
	v.Unidad = unidadLabel(torre, numero)
	return &v, nil
}

// RegistrarEntrada fija hora_entrada_real solo si estaba vacía.
func (r *VisitaRepo) RegistrarEntrada(ctx context.Context, id string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE visitas SET hora_entrada_real = $2 WHERE id = $1 AND hora_entrada_real IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("registrar entrada: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visita %s ya ingresó o no existe: %w", id, domain.ErrConflict)
	}
	return nil
}

// RegistrarSalida fija hora_salida_real solo si hubo entrada y no hay salida.
func (r *VisitaRepo) RegistrarSalida(ctx context.Context, id string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE visitas SET hora_salida_real = $2
		WHERE id = $1 AND hora_entrada_real IS NOT NULL AND hora_salida_real IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("registrar salida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visita %s: salida no aplicable: %w", id, domain.ErrConflict)
	}
	return nil
}
