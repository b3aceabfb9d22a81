package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

// VehiculoRepo implementación de VehiculoRepository.
type VehiculoRepo struct {
	q Querier
}

// NewVehiculoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehiculoRepository(q Querier) *VehiculoRepo {
	return &VehiculoRepo{q: q}
}

// Create persiste el vehículo. La placa ya viene normalizada; el índice único la protege
// de registros concurrentes.
func (r *VehiculoRepo) Create(ctx context.Context, v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos_autorizados (id, residente_id, placa, marca, modelo, color, tipo_vehiculo, autorizado, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.ResidenteID, v.Placa, v.Marca, v.Modelo, v.Color, v.TipoVehiculo, v.Autorizado, v.FechaRegistro,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("placa %s: %w", v.Placa, domain.ErrDuplicate)
		case isForeignKeyViolation(err):
			return domain.NewNotFoundError("residente", v.ResidenteID)
		}
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// GetByPlaca obtiene el vehículo por placa normalizada; (nil, nil) si no existe.
func (r *VehiculoRepo) GetByPlaca(ctx context.Context, placa string) (*entity.Vehiculo, error) {
	query := `
		SELECT ve.id, ve.residente_id, r.nombre, u.torre, u.numero, ve.placa, ve.marca, ve.modelo,
		       ve.color, ve.tipo_vehiculo, ve.autorizado, ve.fecha_registro
		FROM vehiculos_autorizados ve
		JOIN residentes r ON r.id = ve.residente_id
		LEFT JOIN unidades_habitacionales u ON u.id = r.unidad_id
		WHERE ve.placa = $1`
	var (
		v             entity.Vehiculo
		torre, numero *string
	)
	err := r.q.QueryRow(ctx, query, placa).Scan(
		&v.ID, &v.ResidenteID, &v.ResidenteNombre, &torre, &numero, &v.Placa, &v.Marca, &v.Modelo,
		&v.Color, &v.TipoVehiculo, &v.Autorizado, &v.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	v.Unidad = unidadLabel(torre, numero)
	return &v, nil
}
