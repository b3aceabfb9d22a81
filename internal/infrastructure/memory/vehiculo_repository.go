package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ repository.VehiculoRepository = (*VehiculoRepository)(nil)

// VehiculoRepository implementación en memoria con índice único por placa.
type VehiculoRepository struct {
	store *Store
}

// NewVehiculoRepository construye el repositorio.
func NewVehiculoRepository(store *Store) *VehiculoRepository {
	return &VehiculoRepository{store: store}
}

// Create inserta el vehículo. La verificación de placa y la escritura ocurren bajo el mismo lock.
func (r *VehiculoRepository) Create(ctx context.Context, v *entity.Vehiculo) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehiculoPorPlaca[v.Placa]; ok {
		return fmt.Errorf("placa %s: %w", v.Placa, domain.ErrDuplicate)
	}
	if _, ok := s.residentes[v.ResidenteID]; !ok {
		return domain.NewNotFoundError("residente", v.ResidenteID)
	}
	cp := *v
	s.vehiculos[v.ID] = &cp
	s.vehiculoPorPlaca[v.Placa] = v.ID
	return nil
}

// GetByPlaca busca por placa normalizada; (nil, nil) si no existe.
func (r *VehiculoRepository) GetByPlaca(ctx context.Context, placa string) (*entity.Vehiculo, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.vehiculoPorPlaca[placa]
	if !ok {
		return nil, nil
	}
	cp := *s.vehiculos[id]
	if res := s.residenteLocked(cp.ResidenteID); res != nil {
		cp.ResidenteNombre = res.Nombre
		cp.Unidad = res.Unidad
	}
	return &cp, nil
}
