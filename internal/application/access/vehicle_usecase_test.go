package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/infrastructure/memory"
)

func newVehicleUseCase(store *memory.Store, metrics access.Metrics) *access.VehicleUseCase {
	return access.NewVehicleUseCase(
		memory.NewVehiculoRepository(store),
		memory.NewResidenteRepository(store),
		nil,
		metrics,
	)
}

func TestVehicle_RegistraNormalizadaYValidaEnMinusculas(t *testing.T) {
	uc := newVehicleUseCase(seedStore(), nil)
	ctx := context.Background()

	v, err := uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "res-prop", Placa: "ABC-123", Marca: "Mazda"})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", v.Placa)
	assert.True(t, v.Autorizado, "autorizado por defecto")

	res, err := uc.CheckAccess(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, res.Valido)
	assert.Equal(t, access.MsgVehiculoAutorizado, res.Mensaje)
	assert.Equal(t, "Ana Pérez", res.Residente)
	assert.Equal(t, "Vehículo", res.Tipo)
	assert.Equal(t, "Torre A - 101", res.Unidad)
}

func TestVehicle_TipoRegistradoSeRespeta(t *testing.T) {
	uc := newVehicleUseCase(seedStore(), nil)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "res-inq", Placa: "xyz 987", TipoVehiculo: "Moto"})
	require.NoError(t, err)

	res, err := uc.CheckAccess(ctx, "XYZ-987")
	require.NoError(t, err)
	assert.True(t, res.Valido)
	assert.Equal(t, "Moto", res.Tipo)
	assert.Equal(t, "Luis Gómez", res.Residente)
}

func TestVehicle_PlacaDuplicadaTrasNormalizar(t *testing.T) {
	uc := newVehicleUseCase(seedStore(), nil)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "res-prop", Placa: "ab-123"})
	require.NoError(t, err)

	for _, raw := range []string{"AB 123", "ab123", "AB123"} {
		_, err = uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "res-inq", Placa: raw})
		assert.ErrorIs(t, err, domain.ErrDuplicate, raw)
	}
}

func TestVehicle_Validaciones(t *testing.T) {
	uc := newVehicleUseCase(seedStore(), nil)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "res-prop", Placa: " - "})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "placa", ve.Field)

	_, err = uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "no-existe", Placa: "QQQ111"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CheckAccess(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicle_DenegadoDistingueMotivo(t *testing.T) {
	metrics := &recordingMetrics{}
	uc := newVehicleUseCase(seedStore(), metrics)
	ctx := context.Background()
	no := false
	_, err := uc.Register(ctx, dto.CreateVehiculoRequest{ResidenteID: "res-inq", Placa: "BLK-001", Autorizado: &no})
	require.NoError(t, err)

	bloqueado, err := uc.CheckAccess(ctx, "blk001")
	require.NoError(t, err)
	desconocido, err := uc.CheckAccess(ctx, "ZZZ999")
	require.NoError(t, err)

	for _, res := range []*dto.ValidarPlacaResponse{bloqueado, desconocido} {
		assert.False(t, res.Valido)
		assert.Equal(t, access.MsgVehiculoNoAutorizado, res.Mensaje)
		assert.Equal(t, access.Desconocido, res.Residente)
		assert.Equal(t, access.Desconocido, res.Tipo)
		assert.Empty(t, res.Unidad)
	}
	assert.Equal(t, []string{entity.MotivoVehiculoNoAutorizado, entity.MotivoPlacaNoRegistrada}, metrics.motivos())
}
