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
	domainaccess "github.com/jhoicas/condominio-api/internal/domain/access"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// Mensajes fijos de validación de placa.
const (
	MsgVehiculoAutorizado   = "Vehículo autorizado"
	MsgVehiculoNoAutorizado = "Vehículo no autorizado"
	Desconocido             = "Desconocido"
	tipoVehiculoDefault     = "Vehículo"
)

// VehicleUseCase índice de vehículos autorizados por placa normalizada.
type VehicleUseCase struct {
	vehiculoRepo  repository.VehiculoRepository
	residenteRepo repository.ResidenteRepository
	audit         auditor
	now           func() time.Time
}

// NewVehicleUseCase construye el caso de uso. publisher y metrics pueden ser nil.
func NewVehicleUseCase(
	vehiculoRepo repository.VehiculoRepository,
	residenteRepo repository.ResidenteRepository,
	publisher ports.EventPublisher,
	metrics Metrics,
) *VehicleUseCase {
	return &VehicleUseCase{
		vehiculoRepo:  vehiculoRepo,
		residenteRepo: residenteRepo,
		audit:         auditor{publisher: publisher, metrics: metrics},
		now:           time.Now,
	}
}

// Register registra un vehículo. La placa se normaliza antes de guardar y debe ser única.
func (uc *VehicleUseCase) Register(ctx context.Context, in dto.CreateVehiculoRequest) (*dto.VehiculoResponse, error) {
	residenteID := strings.TrimSpace(in.ResidenteID)
	if residenteID == "" {
		return nil, domain.NewValidationError("residente_id", "es requerido")
	}
	placa := domainaccess.NormalizePlate(in.Placa)
	if placa == "" {
		return nil, domain.NewValidationError("placa", "es requerida")
	}

	residente, err := uc.residenteRepo.GetByID(ctx, residenteID)
	if err != nil {
		return nil, fmt.Errorf("buscar residente: %w", err)
	}
	if residente == nil {
		return nil, domain.NewNotFoundError("residente", residenteID)
	}

	autorizado := true
	if in.Autorizado != nil {
		autorizado = *in.Autorizado
	}
	v := &entity.Vehiculo{
		ID:              uuid.New().String(),
		ResidenteID:     residente.ID,
		ResidenteNombre: residente.Nombre,
		Unidad:          residente.Unidad,
		Placa:           placa,
		Marca:           strings.TrimSpace(in.Marca),
		Modelo:          strings.TrimSpace(in.Modelo),
		Color:           strings.TrimSpace(in.Color),
		TipoVehiculo:    strings.TrimSpace(in.TipoVehiculo),
		Autorizado:      autorizado,
		FechaRegistro:   uc.now(),
	}
	if err := uc.vehiculoRepo.Create(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("placa %s ya registrada: %w", placa, domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("registrar vehículo: %w", err)
	}
	return toVehiculoResponse(v), nil
}

// CheckAccess decide si la placa leída por el OCR tiene acceso. Una placa desconocida no es
// un error: se responde valido=false. El motivo interno distingue placa no registrada de
// vehículo registrado sin autorización.
func (uc *VehicleUseCase) CheckAccess(ctx context.Context, rawPlaca string) (*dto.ValidarPlacaResponse, error) {
	placa := domainaccess.NormalizePlate(rawPlaca)
	if placa == "" {
		return nil, domain.NewValidationError("placa", "es requerida")
	}
	v, err := uc.vehiculoRepo.GetByPlaca(ctx, placa)
	if err != nil {
		return nil, fmt.Errorf("buscar placa: %w", err)
	}

	switch {
	case v == nil:
		uc.deny(ctx, placa, entity.MotivoPlacaNoRegistrada, "")
	case !v.Autorizado:
		uc.deny(ctx, placa, entity.MotivoVehiculoNoAutorizado, v.ResidenteID)
	default:
		uc.audit.record(ctx, entity.CanalPlaca, placa, entity.MotivoVehiculoAutorizado, v.ResidenteID, true, uc.now())
		tipo := v.TipoVehiculo
		if tipo == "" {
			tipo = tipoVehiculoDefault
		}
		return &dto.ValidarPlacaResponse{
			Valido:    true,
			Mensaje:   MsgVehiculoAutorizado,
			Residente: v.ResidenteNombre,
			Tipo:      tipo,
			Unidad:    v.Unidad,
		}, nil
	}
	return &dto.ValidarPlacaResponse{
		Valido:    false,
		Mensaje:   MsgVehiculoNoAutorizado,
		Residente: Desconocido,
		Tipo:      Desconocido,
	}, nil
}

func (uc *VehicleUseCase) deny(ctx context.Context, placa, motivo, residenteID string) {
	log.Info().Str("placa", placa).Str("motivo", motivo).Msg("acceso vehicular denegado")
	uc.audit.record(ctx, entity.CanalPlaca, placa, motivo, residenteID, false, uc.now())
}

func toVehiculoResponse(v *entity.Vehiculo) *dto.VehiculoResponse {
	return &dto.VehiculoResponse{
		ID:              v.ID,
		Residente:       v.ResidenteID,
		ResidenteNombre: v.ResidenteNombre,
		Placa:           v.Placa,
		Marca:           v.Marca,
		Modelo:          v.Modelo,
		Color:           v.Color,
		TipoVehiculo:    v.TipoVehiculo,
		Autorizado:      v.Autorizado,
		FechaRegistro:   v.FechaRegistro.Format(time.RFC3339),
	}
}
