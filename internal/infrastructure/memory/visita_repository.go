package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ repository.VisitaRepository = (*VisitaRepository)(nil)

// VisitaRepository implementación en memoria con índice único por código QR.
type VisitaRepository struct {
	store *Store
	tx    *txState
}

// NewVisitaRepository construye el repositorio sin transacción.
func NewVisitaRepository(store *Store) *VisitaRepository {
	return &VisitaRepository{store: store}
}

// Create inserta la visita; el código QR debe ser único.
func (r *VisitaRepository) Create(ctx context.Context, v *entity.Visita) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visitaPorCodigo[v.CodigoQR]; ok {
		return fmt.Errorf("codigo_qr_acceso: %w", domain.ErrDuplicate)
	}
	if _, ok := s.residentes[v.ResidenteID]; !ok {
		return domain.NewNotFoundError("residente", v.ResidenteID)
	}
	cp := *v
	s.visitas[v.ID] = &cp
	s.visitaPorCodigo[v.CodigoQR] = v.ID
	if r.tx != nil {
		r.tx.onRollback(func() {
			delete(s.visitas, v.ID)
			delete(s.visitaPorCodigo, v.CodigoQR)
		})
	}
	return nil
}

// getByCodigo devuelve (nil, nil) si el código no existe.
func (r *VisitaRepository) getByCodigo(ctx context.Context, codigo string) (*entity.Visita, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.visitaPorCodigo[codigo]
	if !ok {
		return nil, nil
	}
	return s.visitaLocked(id), nil
}

// GetByCodigoForUpdate bloquea el código hasta el fin de la transacción. Dos canjes del
// mismo código se serializan; códigos distintos no se bloquean entre sí.
func (r *VisitaRepository) GetByCodigoForUpdate(ctx context.Context, codigo string) (*entity.Visita, error) {
	if r.tx != nil {
		if err := r.tx.lock(ctx, "visita:"+codigo); err != nil {
			return nil, err
		}
	}
	return r.getByCodigo(ctx, codigo)
}

// RegistrarEntrada fija la hora de entrada real. ErrConflict si ya estaba fijada.
func (r *VisitaRepository) RegistrarEntrada(ctx context.Context, id string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitas[id]
	if !ok {
		return domain.NewNotFoundError("visita", id)
	}
	if v.HoraEntradaReal != nil {
		return fmt.Errorf("visita %s ya ingresó: %w", id, domain.ErrConflict)
	}
	v.HoraEntradaReal = &at
	if r.tx != nil {
		r.tx.onRollback(func() { v.HoraEntradaReal = nil })
	}
	return nil
}

// RegistrarSalida fija la hora de salida real. ErrConflict si no hubo entrada o ya salió.
func (r *VisitaRepository) RegistrarSalida(ctx context.Context, id string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitas[id]
	if !ok {
		return domain.NewNotFoundError("visita", id)
	}
	if v.HoraEntradaReal == nil || v.HoraSalidaReal != nil {
		return fmt.Errorf("visita %s: salida no aplicable: %w", id, domain.ErrConflict)
	}
	v.HoraSalidaReal = &at
	if r.tx != nil {
		r.tx.onRollback(func() { v.HoraSalidaReal = nil })
	}
	return nil
}

func (s *Store) visitaLocked(id string) *entity.Visita {
	v, ok := s.visitas[id]
	if !ok {
		return nil
	}
	cp := *v
	if res := s.residenteLocked(v.ResidenteID); res != nil {
		cp.ResidenteNombre = res.Nombre
		cp.Unidad = res.Unidad
	}
	return &cp
}
