package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/pkg/config"
)

// Verificar en tiempo de compilación que FacialService implementa FacialVerifier.
var _ ports.FacialVerifier = (*FacialService)(nil)

// FacialService adaptador REST hacia el servicio de reconocimiento facial del condominio.
// Usa net/http de la librería estándar; el proveedor no publica SDK para Go.
type FacialService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFacialService construye el adaptador. Si APIURL está vacío devuelve nil y la portería
// opera en modo demostración.
func NewFacialService(cfg config.FacialConfig) *FacialService {
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FacialService{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Protocolo del servicio facial ─────────────────────────────────────────────

type identifyRequest struct {
	Imagen string `json:"imagen"` // base64 estándar
}

type identifyResponse struct {
	ResidenteID string  `json:"residente_id"`
	Confianza   float64 `json:"confianza"`
	Error       *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Identify envía la imagen a POST {base}/identify. Un 404 o un residente_id vacío significan
// que no hubo coincidencia.
func (s *FacialService) Identify(ctx context.Context, imagen []byte) (string, error) {
	if len(imagen) == 0 {
		return "", fmt.Errorf("facial: imagen vacía")
	}

	body, err := json.Marshal(identifyRequest{Imagen: base64.StdEncoding.EncodeToString(imagen)})
	if err != nil {
		return "", fmt.Errorf("facial: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/identify", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("facial: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("facial: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("facial: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("facial: leer respuesta: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	var out identifyResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(rawBody, &out); jsonErr == nil && out.Error != nil {
			return "", fmt.Errorf("facial: error del servicio (%s): %s", out.Error.Code, out.Error.Message)
		}
		return "", fmt.Errorf("facial: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	if err := json.Unmarshal(rawBody, &out); err != nil {
		return "", fmt.Errorf("facial: deserializar respuesta: %w", err)
	}
	return strings.TrimSpace(out.ResidenteID), nil
}
