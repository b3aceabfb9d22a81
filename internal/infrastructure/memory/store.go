// Package memory implementa los repositorios en memoria (STORAGE_DRIVER=memory y tests).
// Cada entidad vive en un mapa por ID con índices secundarios para las restricciones de
// unicidad (placa normalizada, código QR), igual que las tablas e índices de PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// Store almacenamiento compartido por todos los repositorios en memoria.
// mu protege los mapas; los bloqueos por fila (FOR UPDATE) usan locks por clave.
type Store struct {
	mu sync.RWMutex

	unidades     map[string]*entity.Unidad
	residentes   map[string]*entity.Residente
	residenteIDs []string // orden de registro

	cuotas        map[string]*entity.Cuota
	cuotaIDs      []string
	pagos         map[string]*entity.Pago
	pagosPorCuota map[string][]string

	visitas         map[string]*entity.Visita
	visitaPorCodigo map[string]string

	vehiculos        map[string]*entity.Vehiculo
	vehiculoPorPlaca map[string]string

	alertas []*entity.AlertaSeguridad
	tickets []*entity.TicketMantenimiento

	locks sync.Map // clave -> chan struct{} (capacidad 1)
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		unidades:         make(map[string]*entity.Unidad),
		residentes:       make(map[string]*entity.Residente),
		cuotas:           make(map[string]*entity.Cuota),
		pagos:            make(map[string]*entity.Pago),
		pagosPorCuota:    make(map[string][]string),
		visitas:          make(map[string]*entity.Visita),
		visitaPorCodigo:  make(map[string]string),
		vehiculos:        make(map[string]*entity.Vehiculo),
		vehiculoPorPlaca: make(map[string]string),
	}
}

// ── Datos del registro externo (unidades, residentes, alertas, tickets) ──────

// AddUnidad registra una unidad habitacional.
func (s *Store) AddUnidad(u entity.Unidad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unidades[u.ID] = &u
}

// AddResidente registra un residente. La etiqueta de unidad se resuelve al leer.
func (s *Store) AddResidente(r entity.Residente) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.residentes[r.ID]; !ok {
		s.residenteIDs = append(s.residenteIDs, r.ID)
	}
	s.residentes[r.ID] = &r
}

// AddAlerta registra una alerta de seguridad.
func (s *Store) AddAlerta(a entity.AlertaSeguridad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertas = append(s.alertas, &a)
}

// AddTicket registra un ticket de mantenimiento.
func (s *Store) AddTicket(t entity.TicketMantenimiento) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append(s.tickets, &t)
}

// ── Bloqueos por clave ───────────────────────────────────────────────────────

func (s *Store) acquire(ctx context.Context, key string) (func(), error) {
	v, _ := s.locks.LoadOrStore(key, make(chan struct{}, 1))
	ch := v.(chan struct{})
	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// residenteLocked devuelve una copia del residente con la etiqueta de su unidad. Requiere s.mu.
func (s *Store) residenteLocked(id string) *entity.Residente {
	r, ok := s.residentes[id]
	if !ok {
		return nil
	}
	cp := *r
	if u, ok := s.unidades[r.UnidadID]; ok {
		cp.Unidad = u.Label()
	}
	return &cp
}
