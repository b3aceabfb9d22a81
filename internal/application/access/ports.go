package access

import (
	"context"
	"time"

	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

// AccessTxRunner ejecuta una función dentro de una transacción con el repo de visitas.
type AccessTxRunner interface {
	RunAccess(ctx context.Context, fn func(visitaRepo repository.VisitaRepository) error) error
}

// Metrics contadores de decisiones de acceso. Puede ser nil.
type Metrics interface {
	AccessDecision(canal, decision, motivo string)
	ObserveRedeem(d time.Duration)
}
