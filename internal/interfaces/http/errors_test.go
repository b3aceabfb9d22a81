package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain"
)

func respondErrorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/err", func(c *fiber.Ctx) error {
		c.Locals(LocalUserID, "user-9")
		return respondError(c, err)
	})
	return app
}

func callErr(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	resp, e := respondErrorApp(err).Test(httptest.NewRequest(http.MethodGet, "/err", nil), -1)
	require.NoError(t, e)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_Mapeo(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("crear: %w", domain.NewValidationError("monto", "debe ser mayor a 0")), http.StatusBadRequest, "VALIDATION"},
		{domain.NewNotFoundError("cuota", "c-1"), http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{fmt.Errorf("placa: %w", domain.ErrConflict), http.StatusConflict, "CONFLICT"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range cases {
		status, body := callErr(t, tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, body.Code)
	}
}

func TestRespondError_InternoRegistraUsuario(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	status, body := callErr(t, errors.New("conexión rechazada"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "conexión rechazada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user-9", entry["user_id"])
	assert.Equal(t, "/err", entry["path"])
	assert.Equal(t, "conexión rechazada", entry["error"])
}
