package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository. Los pagos son inmutables: no hay update ni delete.
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

// Create persiste un pago.
func (r *PagoRepo) Create(ctx context.Context, p *entity.Pago) error {
	query := `
		INSERT INTO pagos (id, cuota_id, monto_pagado, fecha_pago, metodo_pago, referencia_comprobante, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CuotaID, p.MontoPagado, p.FechaPago, p.MetodoPago, p.ReferenciaComprobante, p.Notas,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NewNotFoundError("cuota", p.CuotaID)
		}
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// SumByCuota suma los pagos de la cuota (0 si no hay).
func (r *PagoRepo) SumByCuota(ctx context.Context, cuotaID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto_pagado), 0) FROM pagos WHERE cuota_id = $1`, cuotaID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum pagos: %w", err)
	}
	return total, nil
}

// ListByCuota lista los pagos en orden de inserción.
func (r *PagoRepo) ListByCuota(ctx context.Context, cuotaID string) ([]*entity.Pago, error) {
	query := `
		SELECT id, cuota_id, monto_pagado, fecha_pago, metodo_pago, referencia_comprobante, notas
		FROM pagos WHERE cuota_id = $1 ORDER BY seq`
	rows, err := r.q.Query(ctx, query, cuotaID)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(&p.ID, &p.CuotaID, &p.MontoPagado, &p.FechaPago, &p.MetodoPago, &p.ReferenciaComprobante, &p.Notas); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
