package memory

import (
	"context"
	"slices"

	domainbilling "github.com/jhoicas/condominio-api/internal/domain/billing"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository consultas de lectura del dashboard sobre el store en memoria.
type DashboardRepository struct {
	store *Store
}

// NewDashboardRepository construye el repositorio.
func NewDashboardRepository(store *Store) *DashboardRepository {
	return &DashboardRepository{store: store}
}

func (r *DashboardRepository) GetOccupancy(ctx context.Context) (repository.OccupancyResult, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ocupadas := make(map[string]bool)
	for _, res := range s.residentes {
		ocupadas[res.UnidadID] = true
	}
	var out repository.OccupancyResult
	for id, u := range s.unidades {
		if !u.Activo {
			continue
		}
		out.ActiveUnits++
		if ocupadas[id] {
			out.OccupiedUnits++
		}
	}
	return out, nil
}

func (r *DashboardRepository) CountResidents(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.residentes), nil
}

func (r *DashboardRepository) GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for id, c := range s.cuotas {
		if c.Estado == entity.EstadoPagada {
			continue
		}
		total = total.Add(domainbilling.Saldo(c.Monto, s.sumPagosLocked(id)))
	}
	return total, nil
}

func (r *DashboardRepository) GetTotalCollected(ctx context.Context) (decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, p := range s.pagos {
		total = total.Add(p.MontoPagado)
	}
	return total, nil
}

func (r *DashboardRepository) CountUnresolvedAlerts(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.alertas {
		if !a.Resuelto {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepository) CountOpenTickets(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, t := range s.tickets {
		if t.Pendiente() {
			n++
		}
	}
	return n, nil
}

// RecentAlerts últimas alertas por fecha descendente.
func (r *DashboardRepository) RecentAlerts(ctx context.Context, limit int) ([]*entity.AlertaSeguridad, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.AlertaSeguridad, 0, len(s.alertas))
	for _, a := range s.alertas {
		cp := *a
		if res, ok := s.residentes[a.ResidenteID]; ok {
			cp.ResidenteNombre = res.Nombre
		}
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, func(a, b *entity.AlertaSeguridad) int {
		return b.FechaHora.Compare(a.FechaHora)
	})
	return paginate(out, limit, 0), nil
}
