package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/condominio-api/internal/domain"
	domainbilling "github.com/jhoicas/condominio-api/internal/domain/billing"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ repository.CuotaRepository = (*CuotaRepository)(nil)

// CuotaRepository implementación en memoria. tx es nil fuera de una transacción.
type CuotaRepository struct {
	store *Store
	tx    *txState
}

// NewCuotaRepository construye el repositorio sin transacción.
func NewCuotaRepository(store *Store) *CuotaRepository {
	return &CuotaRepository{store: store}
}

// Create inserta la cuota. El residente debe existir.
func (r *CuotaRepository) Create(ctx context.Context, c *entity.Cuota) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cuotas[c.ID]; ok {
		return fmt.Errorf("cuota %s: %w", c.ID, domain.ErrDuplicate)
	}
	if _, ok := s.residentes[c.ResidenteID]; !ok {
		return domain.NewNotFoundError("residente", c.ResidenteID)
	}
	cp := *c
	s.cuotas[c.ID] = &cp
	s.cuotaIDs = append(s.cuotaIDs, c.ID)
	if r.tx != nil {
		r.tx.onRollback(func() {
			delete(s.cuotas, c.ID)
			s.cuotaIDs = slices.DeleteFunc(s.cuotaIDs, func(id string) bool { return id == c.ID })
		})
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CuotaRepository) GetByID(ctx context.Context, id string) (*entity.Cuota, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cuotaLocked(id), nil
}

// GetForUpdate bloquea la cuota hasta el fin de la transacción.
func (r *CuotaRepository) GetForUpdate(ctx context.Context, id string) (*entity.Cuota, error) {
	if r.tx != nil {
		if err := r.tx.lock(ctx, "cuota:"+id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// UpdateEstado persiste el estado recalculado.
func (r *CuotaRepository) UpdateEstado(ctx context.Context, id string, estado entity.EstadoCuota) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cuotas[id]
	if !ok {
		return domain.NewNotFoundError("cuota", id)
	}
	prev := c.Estado
	c.Estado = estado
	if r.tx != nil {
		r.tx.onRollback(func() { c.Estado = prev })
	}
	return nil
}

// List ordena por vencimiento descendente (más recientes primero).
func (r *CuotaRepository) List(ctx context.Context, f repository.CuotaFilter) ([]*entity.Cuota, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	var out []*entity.Cuota
	for _, id := range s.cuotaIDs {
		c := s.cuotaLocked(id)
		if f.ResidenteID != "" && c.ResidenteID != f.ResidenteID {
			continue
		}
		if f.Estado != "" && domainbilling.Estado(c.Monto, c.MontoPagado, c.FechaVencimiento, now) != f.Estado {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b *entity.Cuota) int {
		return b.FechaVencimiento.Compare(a.FechaVencimiento)
	})
	return paginate(out, f.Limit, f.Offset), nil
}

func (s *Store) cuotaLocked(id string) *entity.Cuota {
	c, ok := s.cuotas[id]
	if !ok {
		return nil
	}
	cp := *c
	if r, ok := s.residentes[c.ResidenteID]; ok {
		cp.ResidenteNombre = r.Nombre
	}
	cp.MontoPagado = s.sumPagosLocked(id)
	return &cp
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
