// Package access contiene los casos de uso de la portería: códigos QR de visitas,
// placas de vehículos y verificación facial.
package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

// Mensajes fijos consumidos por la app móvil de portería.
const (
	MsgAccesoPermitido = "Acceso permitido"
	MsgQRYaUtilizado   = "QR ya utilizado anteriormente"
	MsgQRInvalido      = "Código QR inválido o no existe"
)

const clockLayout = "15:04"

// VisitUseCase registro de visitas y canje de su código QR de un solo uso.
// Estados: programada -> ingresada -> finalizada.
type VisitUseCase struct {
	tx            AccessTxRunner
	visitaRepo    repository.VisitaRepository
	residenteRepo repository.ResidenteRepository
	audit         auditor
	metrics       Metrics
	now           func() time.Time
	loc           *time.Location
}

// NewVisitUseCase construye el caso de uso. publisher y metrics pueden ser nil.
func NewVisitUseCase(
	tx AccessTxRunner,
	visitaRepo repository.VisitaRepository,
	residenteRepo repository.ResidenteRepository,
	publisher ports.EventPublisher,
	metrics Metrics,
) *VisitUseCase {
	return &VisitUseCase{
		tx:            tx,
		visitaRepo:    visitaRepo,
		residenteRepo: residenteRepo,
		audit:         auditor{publisher: publisher, metrics: metrics},
		metrics:       metrics,
		now:           time.Now,
		loc:           time.Local,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *VisitUseCase) WithClock(now func() time.Time) *VisitUseCase {
	uc.now = now
	return uc
}

// IssueToken programa una visita y genera su código QR (UUIDv4).
func (uc *VisitUseCase) IssueToken(ctx context.Context, in dto.CreateVisitaRequest) (*dto.VisitaResponse, error) {
	residenteID := strings.TrimSpace(in.ResidenteID)
	if residenteID == "" {
		return nil, domain.NewValidationError("residente_id", "es requerido")
	}
	nombre := strings.TrimSpace(in.NombreVisitante)
	if nombre == "" {
		return nil, domain.NewValidationError("nombre_visitante", "es requerido")
	}
	fecha, err := time.ParseInLocation(dto.DateLayout, strings.TrimSpace(in.FechaVisita), uc.loc)
	if err != nil {
		return nil, domain.NewValidationError("fecha_visita", "formato esperado YYYY-MM-DD")
	}
	entrada, err := atClock(fecha, in.HoraEntradaEsperada)
	if err != nil {
		return nil, domain.NewValidationError("hora_entrada_esperada", "formato esperado HH:MM")
	}
	var salida *time.Time
	if strings.TrimSpace(in.HoraSalidaEsperada) != "" {
		s, err := atClock(fecha, in.HoraSalidaEsperada)
		if err != nil {
			return nil, domain.NewValidationError("hora_salida_esperada", "formato esperado HH:MM")
		}
		if !s.After(entrada) {
			return nil, domain.NewValidationError("hora_salida_esperada", "debe ser posterior a la hora de entrada")
		}
		salida = &s
	}

	residente, err := uc.residenteRepo.GetByID(ctx, residenteID)
	if err != nil {
		return nil, fmt.Errorf("buscar residente: %w", err)
	}
	if residente == nil {
		return nil, domain.NewNotFoundError("residente", residenteID)
	}

	visita := &entity.Visita{
		ID:                 uuid.New().String(),
		ResidenteID:        residente.ID,
		ResidenteNombre:    residente.Nombre,
		Unidad:             residente.Unidad,
		NombreVisitante:    nombre,
		DocumentoVisitante: strings.TrimSpace(in.DocumentoVisitante),
		EntradaEsperada:    entrada,
		SalidaEsperada:     salida,
		CodigoQR:           uuid.New().String(),
		Notas:              strings.TrimSpace(in.Notas),
		FechaCreacion:      uc.now(),
	}
	if err := uc.visitaRepo.Create(ctx, visita); err != nil {
		return nil, fmt.Errorf("crear visita: %w", err)
	}
	return toVisitaResponse(visita), nil
}

// Redeem canjea un código QR. El primer canje fija la hora de entrada; los siguientes se
// rechazan revelando la identidad del visitante para que el guardia pueda investigar.
// La verificación y la escritura son atómicas por código (lock de fila).
func (uc *VisitUseCase) Redeem(ctx context.Context, codigo string) (*dto.ValidarQRResponse, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, domain.NewValidationError("codigo_qr", "es requerido")
	}
	start := time.Now()

	var (
		visita *entity.Visita
		motivo string
	)
	err := uc.tx.RunAccess(ctx, func(visitaRepo repository.VisitaRepository) error {
		var err error
		visita, err = visitaRepo.GetByCodigoForUpdate(ctx, codigo)
		if err != nil {
			return fmt.Errorf("bloquear visita: %w", err)
		}
		switch {
		case visita == nil:
			motivo = entity.MotivoQRInexistente
			return nil
		case visita.HoraEntradaReal != nil:
			motivo = entity.MotivoQRYaUtilizado
			return nil
		}
		at := uc.now()
		if err := visitaRepo.RegistrarEntrada(ctx, visita.ID, at); err != nil {
			return fmt.Errorf("registrar entrada: %w", err)
		}
		visita.HoraEntradaReal = &at
		motivo = entity.MotivoQRValido
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.ObserveRedeem(time.Since(start))
	}

	resp := &dto.ValidarQRResponse{}
	var residenteID string
	switch motivo {
	case entity.MotivoQRInexistente:
		resp.Mensaje = MsgQRInvalido
	case entity.MotivoQRYaUtilizado:
		resp.Mensaje = MsgQRYaUtilizado
		resp.Visita = toVisitaResumen(visita)
		residenteID = visita.ResidenteID
	default:
		resp.Autorizado = true
		resp.Mensaje = MsgAccesoPermitido
		resp.Visita = toVisitaResumen(visita)
		residenteID = visita.ResidenteID
	}
	uc.audit.record(ctx, entity.CanalQR, codigo, motivo, residenteID, resp.Autorizado, uc.now())
	return resp, nil
}

// RecordDeparture registra la salida del visitante. Sin efecto si el código no existe,
// si el visitante no ingresó o si la salida ya estaba registrada.
func (uc *VisitUseCase) RecordDeparture(ctx context.Context, codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return domain.NewValidationError("codigo_qr", "es requerido")
	}
	return uc.tx.RunAccess(ctx, func(visitaRepo repository.VisitaRepository) error {
		visita, err := visitaRepo.GetByCodigoForUpdate(ctx, codigo)
		if err != nil {
			return fmt.Errorf("bloquear visita: %w", err)
		}
		if visita == nil || visita.HoraEntradaReal == nil || visita.HoraSalidaReal != nil {
			return nil
		}
		if err := visitaRepo.RegistrarSalida(ctx, visita.ID, uc.now()); err != nil && !errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("registrar salida: %w", err)
		}
		return nil
	})
}

func atClock(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(hhmm))
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func toVisitaResumen(v *entity.Visita) *dto.VisitaResumen {
	return &dto.VisitaResumen{
		NombreVisitante: v.NombreVisitante,
		ResidenteNombre: v.ResidenteNombre,
		Unidad:          v.Unidad,
	}
}

func toVisitaResponse(v *entity.Visita) *dto.VisitaResponse {
	resp := &dto.VisitaResponse{
		ID:                  v.ID,
		Residente:           v.ResidenteID,
		ResidenteNombre:     v.ResidenteNombre,
		NombreVisitante:     v.NombreVisitante,
		DocumentoVisitante:  v.DocumentoVisitante,
		FechaVisita:         v.EntradaEsperada.Format(dto.DateLayout),
		HoraEntradaEsperada: v.EntradaEsperada.Format(clockLayout),
		CodigoQRAcceso:      v.CodigoQR,
		HoraEntradaReal:     formatTimePtr(v.HoraEntradaReal),
		HoraSalidaReal:      formatTimePtr(v.HoraSalidaReal),
		Estado:              v.Estado(),
		Notas:               v.Notas,
	}
	if v.SalidaEsperada != nil {
		resp.HoraSalidaEsperada = v.SalidaEsperada.Format(clockLayout)
	}
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
