package repository

import (
	"context"

	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ResidenteRepository acceso de solo lectura al registro de residentes, salvo el score de
// morosidad que escribe el servicio de IA externo a través de esta API.
type ResidenteRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Residente, error)
	// FirstOwner devuelve el primer residente propietario (orden estable) o nil.
	FirstOwner(ctx context.Context) (*entity.Residente, error)
	UpdateRiskScore(ctx context.Context, id string, score decimal.Decimal) error
}
