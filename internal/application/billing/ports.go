package billing

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción con los repos del libro de cobros.
// Si fn retorna error se hace rollback.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(
		cuotaRepo repository.CuotaRepository,
		pagoRepo repository.PagoRepository,
	) error) error
}

// Metrics contadores del libro de cobros. Puede ser nil.
type Metrics interface {
	PaymentApplied(metodo string)
	ObligationSettled()
}
