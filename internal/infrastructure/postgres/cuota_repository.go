package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

var _ repository.CuotaRepository = (*CuotaRepo)(nil)

// pagadoExpr suma de pagos de la cuota c.
const pagadoExpr = `COALESCE((SELECT SUM(p.monto_pagado) FROM pagos p WHERE p.cuota_id = c.id), 0)`

// estadoExpr replica billing.Estado en SQL. El parámetro hoyArg es la fecha de hoy en la zona local.
func estadoExpr(hoyArg int) string {
	return fmt.Sprintf(`CASE
			WHEN %s >= c.monto THEN 'pagada'
			WHEN c.fecha_vencimiento < $%d::date THEN 'vencida'
			ELSE 'pendiente'
		END`, pagadoExpr, hoyArg)
}

const cuotaSelect = `
		SELECT c.id, c.residente_id, r.nombre, c.monto, c.mes, c.fecha_vencimiento, c.estado,
		       c.descripcion, c.fecha_creacion, %s
		FROM cuotas c
		JOIN residentes r ON r.id = c.residente_id`

var (
	cuotaColumns          = fmt.Sprintf(cuotaSelect, pagadoExpr)
	// Con FOR UPDATE no se suma: el libro suma después de insertar el pago.
	cuotaColumnsForUpdate = fmt.Sprintf(cuotaSelect, "0::numeric")
)

// CuotaRepo implementación de CuotaRepository (usable con pool o tx).
type CuotaRepo struct {
	q Querier
}

// NewCuotaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuotaRepository(q Querier) *CuotaRepo {
	return &CuotaRepo{q: q}
}

// Create persiste una nueva cuota.
func (r *CuotaRepo) Create(ctx context.Context, c *entity.Cuota) error {
	query := `
		INSERT INTO cuotas (id, residente_id, monto, mes, fecha_vencimiento, estado, descripcion, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ResidenteID, c.Monto, c.Mes, c.FechaVencimiento, string(c.Estado),
		c.Descripcion, c.FechaCreacion,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NewNotFoundError("residente", c.ResidenteID)
		}
		return fmt.Errorf("insert cuota: %w", err)
	}
	return nil
}

// GetByID obtiene una cuota por ID; (nil, nil) si no existe.
func (r *CuotaRepo) GetByID(ctx context.Context, id string) (*entity.Cuota, error) {
	return r.get(ctx, cuotaColumns+` WHERE c.id = $1`, id)
}

// GetForUpdate obtiene la cuota y bloquea su fila hasta el fin de la transacción.
func (r *CuotaRepo) GetForUpdate(ctx context.Context, id string) (*entity.Cuota, error) {
	return r.get(ctx, cuotaColumnsForUpdate+` WHERE c.id = $1 FOR UPDATE OF c`, id)
}

func (r *CuotaRepo) get(ctx context.Context, query, id string) (*entity.Cuota, error) {
	c, err := scanCuota(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuota: %w", err)
	}
	return c, nil
}

// UpdateEstado persiste el estado recalculado por el libro de cobros.
func (r *CuotaRepo) UpdateEstado(ctx context.Context, id string, estado entity.EstadoCuota) error {
	tag, err := r.q.Exec(ctx, `UPDATE cuotas SET estado = $2 WHERE id = $1`, id, string(estado))
	if err != nil {
		return fmt.Errorf("update estado cuota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("cuota", id)
	}
	return nil
}

// List lista cuotas con filtros opcionales, más recientes (por vencimiento) primero.
func (r *CuotaRepo) List(ctx context.Context, f repository.CuotaFilter) ([]*entity.Cuota, error) {
	var (
		where []string
		args  []any
	)
	if f.ResidenteID != "" {
		args = append(args, f.ResidenteID)
		where = append(where, fmt.Sprintf("c.residente_id = $%d", len(args)))
	}
	if f.Estado != "" {
		now := f.Now
		if now.IsZero() {
			now = time.Now()
		}
		args = append(args, now.In(time.Local).Format("2006-01-02"), string(f.Estado))
		where = append(where, fmt.Sprintf("%s = $%d", estadoExpr(len(args)-1), len(args)))
	}
	query := cuotaColumns
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY c.fecha_vencimiento DESC, c.fecha_creacion DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cuotas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cuota
	for rows.Next() {
		c, err := scanCuota(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cuota: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCuota(row pgx.Row) (*entity.Cuota, error) {
	var (
		c      entity.Cuota
		estado string
	)
	if err := row.Scan(
		&c.ID, &c.ResidenteID, &c.ResidenteNombre, &c.Monto, &c.Mes, &c.FechaVencimiento, &estado,
		&c.Descripcion, &c.FechaCreacion, &c.MontoPagado,
	); err != nil {
		return nil, err
	}
	c.Estado = entity.EstadoCuota(estado)
	c.FechaVencimiento = localDate(c.FechaVencimiento)
	return &c, nil
}
