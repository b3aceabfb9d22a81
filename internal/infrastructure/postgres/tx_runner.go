package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/billing"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

// Ensure TxRunner implements billing.LedgerTxRunner and access.AccessTxRunner.
var _ billing.LedgerTxRunner = (*TxRunner)(nil)
var _ access.AccessTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn y hace Commit, o Rollback si fn falla.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLedger inicia una transacción con los repos de cuotas y pagos (para ApplyPayment).
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	cuotaRepo repository.CuotaRepository,
	pagoRepo repository.PagoRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCuotaRepository(tx), NewPagoRepository(tx))
	})
}

// RunAccess inicia una transacción con el repo de visitas (para el canje de QR).
func (r *TxRunner) RunAccess(ctx context.Context, fn func(visitaRepo repository.VisitaRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewVisitaRepository(tx))
	})
}

// RunPadron inicia una transacción para importar el padrón completo (todo o nada).
func (r *TxRunner) RunPadron(ctx context.Context, fn func(repo *PadronRepo) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPadronRepository(tx))
	})
}
