package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/condominio-api/pkg/config"
)

func newTestService(t *testing.T, h http.HandlerFunc) *FacialService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewFacialService(config.FacialConfig{APIURL: srv.URL + "/", APIKey: "clave", TimeoutSeconds: 2})
}

func TestFacialService_Reconoce(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/identify", r.URL.Path)
		assert.Equal(t, "Bearer clave", r.Header.Get("Authorization"))

		var body identifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		raw, err := base64.StdEncoding.DecodeString(body.Imagen)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(raw))

		_, _ = w.Write([]byte(`{"residente_id":"res-1","confianza":0.97}`))
	})

	id, err := svc.Identify(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "res-1", id)
}

func TestFacialService_SinCoincidencia(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	id, err := svc.Identify(context.Background(), []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestFacialService_ErrorDelServicio(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":"overloaded","message":"intente luego"}}`))
	})

	_, err := svc.Identify(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}

func TestFacialService_RespetaContexto(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.Identify(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewFacialService_SinURL(t *testing.T) {
	assert.Nil(t, NewFacialService(config.FacialConfig{}))
}
