package repository

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// VehiculoRepository define el puerto de persistencia de vehículos autorizados.
// La placa (normalizada) es única; Create devuelve domain.ErrDuplicate si ya existe.
type VehiculoRepository interface {
	Create(ctx context.Context, vehiculo *entity.Vehiculo) error
	GetByPlaca(ctx context.Context, placa string) (*entity.Vehiculo, error)
}
