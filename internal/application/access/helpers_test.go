package access_test

import (
	"sync"
	"time"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/infrastructure/memory"
)

var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

type decision struct {
	canal, decision, motivo string
}

type recordingMetrics struct {
	mu        sync.Mutex
	decisions []decision
	redeems   int
}

func (m *recordingMetrics) AccessDecision(canal, d, motivo string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, decision{canal, d, motivo})
}

func (m *recordingMetrics) ObserveRedeem(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.redeems++
}

func (m *recordingMetrics) motivos() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.decisions))
	for _, d := range m.decisions {
		out = append(out, d.motivo)
	}
	return out
}

// seedStore crea una unidad ocupada por una propietaria y un inquilino.
func seedStore() *memory.Store {
	store := memory.NewStore()
	store.AddUnidad(entity.Unidad{ID: "u-1", Numero: "101", Torre: "Torre A", Activo: true})
	store.AddUnidad(entity.Unidad{ID: "u-2", Numero: "202", Torre: "Torre B", Activo: true})
	store.AddResidente(entity.Residente{ID: "res-inq", Nombre: "Luis Gómez", UnidadID: "u-2"})
	store.AddResidente(entity.Residente{ID: "res-prop", Nombre: "Ana Pérez", UnidadID: "u-1", EsPropietario: true, FotoPerfil: "residentes/fotos/ana.jpg"})
	return store
}
