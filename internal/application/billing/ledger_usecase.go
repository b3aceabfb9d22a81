// Package billing contiene el libro de cobros: cuotas, pagos y la conciliación de su estado.
package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain"
	domainbilling "github.com/jhoicas/condominio-api/internal/domain/billing"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const defaultMetodoPago = "efectivo"

// LedgerUseCase casos de uso del libro de cobros.
// El estado de la cuota nunca se recibe del cliente: se persiste en la transacción de cada pago
// y se deriva de nuevo en cada lectura.
type LedgerUseCase struct {
	tx            LedgerTxRunner
	cuotaRepo     repository.CuotaRepository
	pagoRepo      repository.PagoRepository
	residenteRepo repository.ResidenteRepository
	metrics       Metrics
	now           func() time.Time
	loc           *time.Location
}

// NewLedgerUseCase construye el caso de uso. metrics puede ser nil.
func NewLedgerUseCase(
	tx LedgerTxRunner,
	cuotaRepo repository.CuotaRepository,
	pagoRepo repository.PagoRepository,
	residenteRepo repository.ResidenteRepository,
	metrics Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		tx:            tx,
		cuotaRepo:     cuotaRepo,
		pagoRepo:      pagoRepo,
		residenteRepo: residenteRepo,
		metrics:       metrics,
		now:           time.Now,
		loc:           time.Local,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// WithLocation fija la zona horaria en la que se interpretan las fechas de vencimiento.
func (uc *LedgerUseCase) WithLocation(loc *time.Location) *LedgerUseCase {
	if loc != nil {
		uc.loc = loc
	}
	return uc
}

// CreateObligation registra una cuota. Estado inicial pendiente, o vencida si la fecha ya pasó.
func (uc *LedgerUseCase) CreateObligation(ctx context.Context, in dto.CreateCuotaRequest) (*dto.CuotaResponse, error) {
	residenteID := strings.TrimSpace(in.ResidenteID)
	if residenteID == "" {
		return nil, domain.NewValidationError("residente_id", "es requerido")
	}
	mes := strings.TrimSpace(in.Mes)
	if mes == "" {
		return nil, domain.NewValidationError("mes", "es requerido")
	}
	if err := domainbilling.ValidarMonto("monto", in.Monto); err != nil {
		return nil, err
	}
	vencimiento, err := time.ParseInLocation(dto.DateLayout, strings.TrimSpace(in.FechaVencimiento), uc.loc)
	if err != nil {
		return nil, domain.NewValidationError("fecha_vencimiento", "formato esperado YYYY-MM-DD")
	}

	residente, err := uc.residenteRepo.GetByID(ctx, residenteID)
	if err != nil {
		return nil, fmt.Errorf("buscar residente: %w", err)
	}
	if residente == nil {
		return nil, domain.NewNotFoundError("residente", residenteID)
	}

	now := uc.now()
	cuota := &entity.Cuota{
		ID:               uuid.New().String(),
		ResidenteID:      residente.ID,
		ResidenteNombre:  residente.Nombre,
		Monto:            in.Monto,
		Mes:              mes,
		FechaVencimiento: vencimiento,
		Estado:           domainbilling.Estado(in.Monto, decimal.Zero, vencimiento, now),
		Descripcion:      strings.TrimSpace(in.Descripcion),
		FechaCreacion:    now,
	}
	if err := uc.cuotaRepo.Create(ctx, cuota); err != nil {
		return nil, fmt.Errorf("crear cuota: %w", err)
	}
	return uc.toCuotaResponse(cuota), nil
}

// ApplyPayment registra un pago y recalcula el estado de la cuota en una sola transacción.
// La cuota se bloquea (SELECT FOR UPDATE) para serializar pagos concurrentes sobre ella;
// pagos sobre cuotas distintas no se bloquean entre sí.
func (uc *LedgerUseCase) ApplyPayment(ctx context.Context, in dto.CreatePagoRequest) (*dto.PagoResponse, error) {
	cuotaID := strings.TrimSpace(in.CuotaID)
	if cuotaID == "" {
		return nil, domain.NewValidationError("cuota_id", "es requerido")
	}
	if err := domainbilling.ValidarMonto("monto_pagado", in.MontoPagado); err != nil {
		return nil, err
	}
	metodo := strings.TrimSpace(in.MetodoPago)
	if metodo == "" {
		metodo = defaultMetodoPago
	}

	var (
		pago      *entity.Pago
		cuota     *entity.Cuota
		liquidada bool
	)
	err := uc.tx.RunLedger(ctx, func(cuotaRepo repository.CuotaRepository, pagoRepo repository.PagoRepository) error {
		var err error
		cuota, err = cuotaRepo.GetForUpdate(ctx, cuotaID)
		if err != nil {
			return fmt.Errorf("bloquear cuota: %w", err)
		}
		if cuota == nil {
			return domain.NewNotFoundError("cuota", cuotaID)
		}

		now := uc.now()
		pago = &entity.Pago{
			ID:                    uuid.New().String(),
			CuotaID:               cuota.ID,
			MontoPagado:           in.MontoPagado,
			FechaPago:             now,
			MetodoPago:            metodo,
			ReferenciaComprobante: strings.TrimSpace(in.ReferenciaComprobante),
			Notas:                 strings.TrimSpace(in.Notas),
		}
		if err := pagoRepo.Create(ctx, pago); err != nil {
			return fmt.Errorf("registrar pago: %w", err)
		}

		pagado, err := pagoRepo.SumByCuota(ctx, cuota.ID)
		if err != nil {
			return fmt.Errorf("sumar pagos: %w", err)
		}
		cuota.MontoPagado = pagado
		estado := domainbilling.Estado(cuota.Monto, pagado, cuota.FechaVencimiento, now)
		if estado != cuota.Estado {
			if err := cuotaRepo.UpdateEstado(ctx, cuota.ID, estado); err != nil {
				return fmt.Errorf("actualizar estado: %w", err)
			}
			liquidada = estado == entity.EstadoPagada
			cuota.Estado = estado
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentApplied(metodo)
		if liquidada {
			uc.metrics.ObligationSettled()
		}
	}
	resp := toPagoResponse(pago)
	resp.CuotaDetalle = uc.toCuotaResponse(cuota)
	return resp, nil
}

// Balance devuelve monto, pagado, saldo y estado de la cuota calculados con la hora actual.
func (uc *LedgerUseCase) Balance(ctx context.Context, cuotaID string) (*dto.SaldoCuotaResponse, error) {
	cuota, err := uc.getCuota(ctx, cuotaID)
	if err != nil {
		return nil, err
	}
	pagado, err := uc.pagoRepo.SumByCuota(ctx, cuota.ID)
	if err != nil {
		return nil, fmt.Errorf("sumar pagos: %w", err)
	}
	liq := domainbilling.Liquidar(cuota.Monto, pagado, cuota.FechaVencimiento, uc.now())
	return &dto.SaldoCuotaResponse{
		CuotaID:        cuota.ID,
		Monto:          liq.Monto,
		MontoPagado:    liq.Pagado,
		SaldoPendiente: liq.Saldo,
		Estado:         string(liq.Estado),
	}, nil
}

// GetObligation obtiene una cuota por ID con su estado a la hora actual.
func (uc *LedgerUseCase) GetObligation(ctx context.Context, cuotaID string) (*dto.CuotaResponse, error) {
	cuota, err := uc.getCuota(ctx, cuotaID)
	if err != nil {
		return nil, err
	}
	return uc.toCuotaResponse(cuota), nil
}

// ListObligations lista cuotas con filtros opcionales por residente y estado.
func (uc *LedgerUseCase) ListObligations(ctx context.Context, q dto.ListCuotasQuery) ([]dto.CuotaResponse, error) {
	estado := entity.EstadoCuota(strings.ToLower(strings.TrimSpace(q.Estado)))
	if estado != "" && !estado.Valid() {
		return nil, domain.NewValidationError("estado", "debe ser pendiente, vencida o pagada")
	}
	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()

	list, err := uc.cuotaRepo.List(ctx, repository.CuotaFilter{
		ResidenteID: strings.TrimSpace(q.ResidenteID),
		Estado:      estado,
		Now:         uc.now(),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listar cuotas: %w", err)
	}
	out := make([]dto.CuotaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *uc.toCuotaResponse(c))
	}
	return out, nil
}

// ListPayments lista los pagos de una cuota en orden de registro.
func (uc *LedgerUseCase) ListPayments(ctx context.Context, cuotaID string) ([]dto.PagoResponse, error) {
	cuota, err := uc.getCuota(ctx, cuotaID)
	if err != nil {
		return nil, err
	}
	pagos, err := uc.pagoRepo.ListByCuota(ctx, cuota.ID)
	if err != nil {
		return nil, fmt.Errorf("listar pagos: %w", err)
	}
	out := make([]dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, *toPagoResponse(p))
	}
	return out, nil
}

func (uc *LedgerUseCase) getCuota(ctx context.Context, cuotaID string) (*entity.Cuota, error) {
	cuotaID = strings.TrimSpace(cuotaID)
	if cuotaID == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	cuota, err := uc.cuotaRepo.GetByID(ctx, cuotaID)
	if err != nil {
		return nil, fmt.Errorf("buscar cuota: %w", err)
	}
	if cuota == nil {
		return nil, domain.NewNotFoundError("cuota", cuotaID)
	}
	return cuota, nil
}

// toCuotaResponse deriva el estado con la hora actual: el guardado puede haber quedado atrás
// si venció sin pagos desde el último registro.
func (uc *LedgerUseCase) toCuotaResponse(c *entity.Cuota) *dto.CuotaResponse {
	return &dto.CuotaResponse{
		ID:               c.ID,
		Residente:        c.ResidenteID,
		ResidenteNombre:  c.ResidenteNombre,
		Monto:            c.Monto,
		Mes:              c.Mes,
		FechaVencimiento: c.FechaVencimiento.Format(dto.DateLayout),
		Estado:           string(domainbilling.Estado(c.Monto, c.MontoPagado, c.FechaVencimiento, uc.now())),
		Descripcion:      c.Descripcion,
		FechaCreacion:    c.FechaCreacion.Format(time.RFC3339),
	}
}

func toPagoResponse(p *entity.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:                    p.ID,
		Cuota:                 p.CuotaID,
		MontoPagado:           p.MontoPagado,
		FechaPago:             p.FechaPago.Format(time.RFC3339),
		MetodoPago:            p.MetodoPago,
		ReferenciaComprobante: p.ReferenciaComprobante,
		Notas:                 p.Notas,
	}
}
