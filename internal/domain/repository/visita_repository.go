package repository

import (
	"context"
	"time"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

// VisitaRepository define el puerto de persistencia para visitas y sus códigos QR.
// El código QR es único a nivel de almacenamiento; Create devuelve domain.ErrDuplicate si choca.
type VisitaRepository interface {
	Create(ctx context.Context, visita *entity.Visita) error
	// GetByCodigoForUpdate bloquea la visita hasta el fin de la transacción; (nil, nil) si no existe.
	GetByCodigoForUpdate(ctx context.Context, codigo string) (*entity.Visita, error)
	RegistrarEntrada(ctx context.Context, id string, at time.Time) error
	RegistrarSalida(ctx context.Context, id string, at time.Time) error
}
