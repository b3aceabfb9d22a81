package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PagoRepository = (*PagoRepository)(nil)

// PagoRepository implementación en memoria (solo inserción).
type PagoRepository struct {
	store *Store
	tx    *txState
}

// NewPagoRepository construye el repositorio sin transacción.
func NewPagoRepository(store *Store) *PagoRepository {
	return &PagoRepository{store: store}
}

// Create inserta el pago. La cuota debe existir.
func (r *PagoRepository) Create(ctx context.Context, p *entity.Pago) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pagos[p.ID]; ok {
		return fmt.Errorf("pago %s: %w", p.ID, domain.ErrDuplicate)
	}
	if _, ok := s.cuotas[p.CuotaID]; !ok {
		return domain.NewNotFoundError("cuota", p.CuotaID)
	}
	cp := *p
	s.pagos[p.ID] = &cp
	s.pagosPorCuota[p.CuotaID] = append(s.pagosPorCuota[p.CuotaID], p.ID)
	if r.tx != nil {
		r.tx.onRollback(func() {
			delete(s.pagos, p.ID)
			s.pagosPorCuota[p.CuotaID] = slices.DeleteFunc(s.pagosPorCuota[p.CuotaID], func(id string) bool { return id == p.ID })
		})
	}
	return nil
}

// SumByCuota suma los montos pagados de la cuota.
func (r *PagoRepository) SumByCuota(ctx context.Context, cuotaID string) (decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sumPagosLocked(cuotaID), nil
}

// ListByCuota devuelve los pagos en orden de inserción.
func (r *PagoRepository) ListByCuota(ctx context.Context, cuotaID string) ([]*entity.Pago, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.pagosPorCuota[cuotaID]
	out := make([]*entity.Pago, 0, len(ids))
	for _, id := range ids {
		cp := *s.pagos[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) sumPagosLocked(cuotaID string) decimal.Decimal {
	total := decimal.Zero
	for _, id := range s.pagosPorCuota[cuotaID] {
		total = total.Add(s.pagos[id].MontoPagado)
	}
	return total
}
