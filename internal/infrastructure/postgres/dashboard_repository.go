package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only del dashboard. Cada método es una sola consulta agregada.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) GetOccupancy(ctx context.Context) (repository.OccupancyResult, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE EXISTS (SELECT 1 FROM residentes r WHERE r.unidad_id = u.id))
		FROM unidades_habitacionales u
		WHERE u.activo`
	var out repository.OccupancyResult
	if err := r.q.QueryRow(ctx, query).Scan(&out.ActiveUnits, &out.OccupiedUnits); err != nil {
		return out, fmt.Errorf("ocupación: %w", err)
	}
	return out, nil
}

func (r *DashboardRepo) CountResidents(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM residentes`)
}

// GetOutstandingBalance suma max(monto - pagado, 0) de las cuotas pendientes y vencidas.
func (r *DashboardRepo) GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(GREATEST(c.monto - COALESCE(p.total, 0), 0)), 0)
		FROM cuotas c
		LEFT JOIN (SELECT cuota_id, SUM(monto_pagado) AS total FROM pagos GROUP BY cuota_id) p
		       ON p.cuota_id = c.id
		WHERE c.estado IN ('pendiente', 'vencida')`
	return r.sum(ctx, query)
}

func (r *DashboardRepo) GetTotalCollected(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(monto_pagado), 0) FROM pagos`)
}

func (r *DashboardRepo) CountUnresolvedAlerts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM alertas_seguridad WHERE NOT resuelto`)
}

func (r *DashboardRepo) CountOpenTickets(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tickets_mantenimiento WHERE estado IN ('abierto', 'en_proceso')`)
}

func (r *DashboardRepo) RecentAlerts(ctx context.Context, limit int) ([]*entity.AlertaSeguridad, error) {
	query := `
		SELECT a.id, a.tipo_alerta, a.descripcion, a.fecha_hora, a.url_evidencia,
		       COALESCE(a.residente_id, ''), COALESCE(r.nombre, ''), a.resuelto
		FROM alertas_seguridad a
		LEFT JOIN residentes r ON r.id = a.residente_id
		ORDER BY a.fecha_hora DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("alertas recientes: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.AlertaSeguridad, 0, limit)
	for rows.Next() {
		var a entity.AlertaSeguridad
		if err := rows.Scan(&a.ID, &a.TipoAlerta, &a.Descripcion, &a.FechaHora, &a.URLEvidencia,
			&a.ResidenteID, &a.ResidenteNombre, &a.Resuelto); err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) sum(ctx context.Context, query string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum: %w", err)
	}
	return total, nil
}
