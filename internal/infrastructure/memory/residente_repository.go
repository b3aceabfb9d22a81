package memory

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ResidenteRepository = (*ResidenteRepository)(nil)

// ResidenteRepository lectura de residentes en memoria.
type ResidenteRepository struct {
	store *Store
}

// NewResidenteRepository construye el repositorio.
func NewResidenteRepository(store *Store) *ResidenteRepository {
	return &ResidenteRepository{store: store}
}

func (r *ResidenteRepository) GetByID(ctx context.Context, id string) (*entity.Residente, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.residenteLocked(id), nil
}

// FirstOwner primer propietario en orden de registro.
func (r *ResidenteRepository) FirstOwner(ctx context.Context) (*entity.Residente, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.residenteIDs {
		if s.residentes[id].EsPropietario {
			return s.residenteLocked(id), nil
		}
	}
	return nil, nil
}

func (r *ResidenteRepository) UpdateRiskScore(ctx context.Context, id string, score decimal.Decimal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.residentes[id]
	if !ok {
		return domain.NewNotFoundError("residente", id)
	}
	res.ScoreMorosidadIA = &score
	return nil
}
