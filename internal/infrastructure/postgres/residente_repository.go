package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ResidenteRepository = (*ResidenteRepo)(nil)

const residenteColumns = `
		SELECT r.id, r.nombre, r.unidad_id, u.torre, u.numero, r.telefono, r.es_propietario,
		       r.foto_perfil, r.score_morosidad_ia
		FROM residentes r
		LEFT JOIN unidades_habitacionales u ON u.id = r.unidad_id`

// ResidenteRepo implementación de ResidenteRepository.
type ResidenteRepo struct {
	q Querier
}

// NewResidenteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResidenteRepository(q Querier) *ResidenteRepo {
	return &ResidenteRepo{q: q}
}

// GetByID obtiene un residente por ID; (nil, nil) si no existe.
func (r *ResidenteRepo) GetByID(ctx context.Context, id string) (*entity.Residente, error) {
	return r.get(ctx, residenteColumns+` WHERE r.id = $1`, id)
}

// FirstOwner primer propietario por fecha de registro.
func (r *ResidenteRepo) FirstOwner(ctx context.Context) (*entity.Residente, error) {
	return r.get(ctx, residenteColumns+` WHERE r.es_propietario ORDER BY r.fecha_registro, r.id LIMIT 1`)
}

func (r *ResidenteRepo) get(ctx context.Context, query string, args ...any) (*entity.Residente, error) {
	var (
		res           entity.Residente
		torre, numero *string
		score         decimal.NullDecimal
	)
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&res.ID, &res.Nombre, &res.UnidadID, &torre, &numero, &res.Telefono, &res.EsPropietario,
		&res.FotoPerfil, &score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get residente: %w", err)
	}
	res.Unidad = unidadLabel(torre, numero)
	if score.Valid {
		res.ScoreMorosidadIA = &score.Decimal
	}
	return &res, nil
}

// UpdateRiskScore guarda el score de morosidad calculado externamente.
func (r *ResidenteRepo) UpdateRiskScore(ctx context.Context, id string, score decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE residentes SET score_morosidad_ia = $2 WHERE id = $1`, id, score)
	if err != nil {
		return fmt.Errorf("update score residente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("residente", id)
	}
	return nil
}
