package http

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain"
)

// maxImagenBytes límite de la foto enviada por la cámara de portería.
const maxImagenBytes = 8 << 20

// AccessHandler endpoints consumidos por los dispositivos de portería.
// Las credenciales rechazadas responden 200 con el veredicto; no son errores.
type AccessHandler struct {
	visitas   *access.VisitUseCase
	vehiculos *access.VehicleUseCase
	facial    *access.FacialUseCase
}

// NewAccessHandler construye el handler.
func NewAccessHandler(visitas *access.VisitUseCase, vehiculos *access.VehicleUseCase, facial *access.FacialUseCase) *AccessHandler {
	return &AccessHandler{visitas: visitas, vehiculos: vehiculos, facial: facial}
}

// ValidatePlate godoc
// @Summary      Validar placa de vehículo
// @Tags         access
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarPlacaRequest  true  "Placa leída por el OCR"
// @Success      200   {object}  dto.ValidarPlacaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access/validate-plate [post]
func (h *AccessHandler) ValidatePlate(c *fiber.Ctx) error {
	var in dto.ValidarPlacaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.vehiculos.CheckAccess(c.UserContext(), in.Placa)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValidateQR godoc
// @Summary      Validar código QR de visita
// @Description  El primer canje autoriza el ingreso; los siguientes se rechazan mostrando la identidad del visitante.
// @Tags         access
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarQRRequest  true  "Código QR"
// @Success      200   {object}  dto.ValidarQRResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access/validate-qr [post]
func (h *AccessHandler) ValidateQR(c *fiber.Ctx) error {
	var in dto.ValidarQRRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.visitas.Redeem(c.UserContext(), in.CodigoQR)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValidateFacial godoc
// @Summary      Verificación facial
// @Description  Acepta JSON {"imagen": "<base64>"} o multipart con el archivo "imagen".
// @Tags         access
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.ValidarFacialRequest  false  "Imagen en base64"
// @Success      200   {object}  dto.ValidarFacialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access/validate-facial [post]
func (h *AccessHandler) ValidateFacial(c *fiber.Ctx) error {
	imagen, err := readImagen(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.facial.Verify(c.UserContext(), imagen)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// readImagen extrae la imagen de un multipart (archivo "imagen") o de un JSON con base64.
// Si el texto no es base64 válido se reenvía tal cual: la imagen es opaca para esta API.
func readImagen(c *fiber.Ctx) ([]byte, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("imagen")
		if err != nil {
			return nil, domain.NewValidationError("imagen", "es requerida")
		}
		if fh.Size > maxImagenBytes {
			return nil, domain.NewValidationError("imagen", "supera el tamaño máximo")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImagenBytes))
	}

	var in dto.ValidarFacialRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, domain.NewValidationError("imagen", "cuerpo inválido")
	}
	raw := strings.TrimSpace(in.Imagen)
	if raw == "" {
		return nil, domain.NewValidationError("imagen", "es requerida")
	}
	// data:image/jpeg;base64,....
	if i := strings.Index(raw, ";base64,"); i >= 0 && strings.HasPrefix(raw, "data:") {
		raw = raw[i+len(";base64,"):]
	}
	if b, err := base64.StdEncoding.DecodeString(raw); err == nil && len(b) > 0 {
		return b, nil
	}
	return []byte(raw), nil
}
