package access

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// Mensajes y datos de la verificación facial.
const (
	MsgRostroVerificado = "Rostro verificado exitosamente"
	MsgRostroDemo       = "Rostro verificado (Demo)"
	demoResidente       = "Residente Demo"
	demoUnidad          = "A-101 (Demo)"
)

// FacialUseCase relay de verificación facial. El veredicto lo da un servicio externo; si no
// está configurado, falla o no reconoce a nadie, se muestra el primer propietario registrado,
// y sin propietarios una respuesta demo fija.
type FacialUseCase struct {
	verifier      ports.FacialVerifier
	residenteRepo repository.ResidenteRepository
	audit         auditor
	mediaBaseURL  string
	now           func() time.Time
}

// NewFacialUseCase construye el caso de uso. verifier, publisher y metrics pueden ser nil.
// mediaBaseURL se antepone a las rutas relativas de foto_perfil.
func NewFacialUseCase(
	verifier ports.FacialVerifier,
	residenteRepo repository.ResidenteRepository,
	publisher ports.EventPublisher,
	metrics Metrics,
	mediaBaseURL string,
) *FacialUseCase {
	return &FacialUseCase{
		verifier:      verifier,
		residenteRepo: residenteRepo,
		audit:         auditor{publisher: publisher, metrics: metrics},
		mediaBaseURL:  strings.TrimRight(mediaBaseURL, "/"),
		now:           time.Now,
	}
}

// Verify devuelve siempre un veredicto válido; solo falla si falta la imagen o el
// repositorio de residentes no responde.
func (uc *FacialUseCase) Verify(ctx context.Context, imagen []byte) (*dto.ValidarFacialResponse, error) {
	if len(imagen) == 0 {
		return nil, domain.NewValidationError("imagen", "es requerida")
	}

	residente, err := uc.identify(ctx, imagen)
	if err != nil {
		return nil, err
	}
	if residente == nil {
		uc.audit.record(ctx, entity.CanalFacial, "", entity.MotivoRostroDemo, "", true, uc.now())
		return &dto.ValidarFacialResponse{
			Valido:        true,
			Mensaje:       MsgRostroDemo,
			EsPropietario: true,
			Residente: dto.ResidenteFacial{
				Nombre: demoResidente,
				Unidad: demoUnidad,
			},
		}, nil
	}

	uc.audit.record(ctx, entity.CanalFacial, "", entity.MotivoRostroVerificado, residente.ID, true, uc.now())
	return &dto.ValidarFacialResponse{
		Valido:        true,
		Mensaje:       MsgRostroVerificado,
		EsPropietario: residente.EsPropietario,
		Residente: dto.ResidenteFacial{
			Nombre:     residente.Nombre,
			Unidad:     residente.Unidad,
			FotoPerfil: uc.fotoURL(residente.FotoPerfil),
		},
	}, nil
}

func (uc *FacialUseCase) identify(ctx context.Context, imagen []byte) (*entity.Residente, error) {
	if uc.verifier != nil {
		id, err := uc.verifier.Identify(ctx, imagen)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("facial: servicio externo no disponible, se usa propietario por defecto")
		case id != "":
			r, err := uc.residenteRepo.GetByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("buscar residente: %w", err)
			}
			if r != nil {
				return r, nil
			}
			log.Warn().Str("residente_id", id).Msg("facial: residente reconocido no existe")
		}
	}
	r, err := uc.residenteRepo.FirstOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("buscar propietario: %w", err)
	}
	return r, nil
}

func (uc *FacialUseCase) fotoURL(path string) *string {
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || uc.mediaBaseURL == "" {
		return &path
	}
	u := uc.mediaBaseURL + "/" + strings.TrimLeft(path, "/")
	return &u
}
