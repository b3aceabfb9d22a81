package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// PadronRepo carga unidades y residentes del registro externo (seed y entornos de prueba).
// No toca score_morosidad_ia, que pertenece al servicio de IA.
type PadronRepo struct {
	q Querier
}

// NewPadronRepository construye el adaptador. Usar dentro de TxRunner.RunPadron.
func NewPadronRepository(q Querier) *PadronRepo {
	return &PadronRepo{q: q}
}

// UpsertUnidad inserta o actualiza la unidad por ID.
func (r *PadronRepo) UpsertUnidad(ctx context.Context, u entity.Unidad) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO unidades_habitacionales (id, numero, torre, activo)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET numero = EXCLUDED.numero, torre = EXCLUDED.torre, activo = EXCLUDED.activo`,
		u.ID, u.Numero, u.Torre, u.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("unidad %s: numero duplicado: %w", u.Numero, err)
		}
		return fmt.Errorf("upsert unidad: %w", err)
	}
	return nil
}

// UpsertResidente inserta o actualiza el residente por ID.
func (r *PadronRepo) UpsertResidente(ctx context.Context, res entity.Residente) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO residentes (id, nombre, unidad_id, telefono, es_propietario, foto_perfil)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre, unidad_id = EXCLUDED.unidad_id, telefono = EXCLUDED.telefono,
			es_propietario = EXCLUDED.es_propietario, foto_perfil = EXCLUDED.foto_perfil`,
		res.ID, res.Nombre, res.UnidadID, res.Telefono, res.EsPropietario, res.FotoPerfil,
	)
	if err != nil {
		return fmt.Errorf("upsert residente %s: %w", res.Nombre, err)
	}
	return nil
}
