package repository

import (
	"context"
	"time"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CuotaFilter filtros opcionales para listar cuotas.
// Estado se compara contra el estado derivado a la hora Now, no contra la columna guardada.
type CuotaFilter struct {
	ResidenteID string
	Estado      entity.EstadoCuota
	Now         time.Time
	Limit       int
	Offset      int
}

// CuotaRepository define el puerto de persistencia para Cuota (obligaciones de cobro).
// GetByID y List devuelven cada cuota con MontoPagado cargado; GetByID devuelve (nil, nil) si no existe.
type CuotaRepository interface {
	Create(ctx context.Context, cuota *entity.Cuota) error
	GetByID(ctx context.Context, id string) (*entity.Cuota, error)
	// GetForUpdate bloquea la cuota hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Cuota, error)
	UpdateEstado(ctx context.Context, id string, estado entity.EstadoCuota) error
	List(ctx context.Context, filter CuotaFilter) ([]*entity.Cuota, error)
}

// PagoRepository define el puerto de persistencia para Pago (solo inserción).
type PagoRepository interface {
	Create(ctx context.Context, pago *entity.Pago) error
	SumByCuota(ctx context.Context, cuotaID string) (decimal.Decimal, error)
	// ListByCuota devuelve los pagos en orden de inserción.
	ListByCuota(ctx context.Context, cuotaID string) ([]*entity.Pago, error)
}
