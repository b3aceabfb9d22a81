package repository

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OccupancyResult conteo de unidades activas y ocupadas (con al menos un residente).
type OccupancyResult struct {
	ActiveUnits   int
	OccupiedUnits int
}

// DashboardRepository consultas de lectura para el dashboard de administración.
// Las implementaciones son read-only y devuelven cero cuando no hay datos.
type DashboardRepository interface {
	GetOccupancy(ctx context.Context) (OccupancyResult, error)
	CountResidents(ctx context.Context) (int, error)
	// GetOutstandingBalance suma el saldo pendiente de las cuotas no pagadas.
	GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error)
	// GetTotalCollected suma todos los pagos aplicados.
	GetTotalCollected(ctx context.Context) (decimal.Decimal, error)
	CountUnresolvedAlerts(ctx context.Context) (int, error)
	// CountOpenTickets cuenta tickets abiertos o en proceso.
	CountOpenTickets(ctx context.Context) (int, error)
	RecentAlerts(ctx context.Context, limit int) ([]*entity.AlertaSeguridad, error)
}
