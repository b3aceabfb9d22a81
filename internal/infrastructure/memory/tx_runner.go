package memory

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/billing"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ billing.LedgerTxRunner = (*TxRunner)(nil)
var _ access.AccessTxRunner = (*TxRunner)(nil)

// txState bloqueos tomados y acciones de deshacer de una transacción en memoria.
// Las escrituras son visibles de inmediato para otros lectores (sin aislamiento); los locks
// por clave garantizan la serialización que piden los casos de uso.
type txState struct {
	store    *Store
	released map[string]func()
	undo     []func() // se ejecutan con s.mu tomado, en orden inverso
}

func newTxState(s *Store) *txState {
	return &txState{store: s, released: make(map[string]func())}
}

// lock toma el lock de la clave hasta el fin de la transacción. Reentrante por transacción.
func (t *txState) lock(ctx context.Context, key string) error {
	if _, ok := t.released[key]; ok {
		return nil
	}
	release, err := t.store.acquire(ctx, key)
	if err != nil {
		return err
	}
	t.released[key] = release
	return nil
}

func (t *txState) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *txState) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *txState) release() {
	for _, fn := range t.released {
		fn()
	}
	t.released = nil
}

// TxRunner ejecuta callbacks dentro de una transacción en memoria.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) run(fn func(t *txState) error) error {
	t := newTxState(r.store)
	defer t.release()
	if err := fn(t); err != nil {
		t.rollback()
		return err
	}
	return nil
}

// RunLedger ejecuta fn con repos de cuotas y pagos atados a la transacción.
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	cuotaRepo repository.CuotaRepository,
	pagoRepo repository.PagoRepository,
) error) error {
	return r.run(func(t *txState) error {
		return fn(&CuotaRepository{store: r.store, tx: t}, &PagoRepository{store: r.store, tx: t})
	})
}

// RunAccess ejecuta fn con el repo de visitas atado a la transacción.
func (r *TxRunner) RunAccess(ctx context.Context, fn func(visitaRepo repository.VisitaRepository) error) error {
	return r.run(func(t *txState) error {
		return fn(&VisitaRepository{store: r.store, tx: t})
	})
}
