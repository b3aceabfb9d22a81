package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/ports/mocks"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/infrastructure/memory"
)

const mediaBase = "https://media.condominio.test/"

var imagen = []byte{0xff, 0xd8, 0xff, 0xe0}

type FacialSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	verifier *mocks.MockFacialVerifier
	store    *memory.Store
	uc       *access.FacialUseCase
}

func TestFacialSuite(t *testing.T) {
	suite.Run(t, new(FacialSuite))
}

func (s *FacialSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.verifier = mocks.NewMockFacialVerifier(s.ctrl)
	s.store = seedStore()
	s.uc = access.NewFacialUseCase(s.verifier, memory.NewResidenteRepository(s.store), nil, nil, mediaBase)
}

func (s *FacialSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FacialSuite) TestResidenteReconocido() {
	s.verifier.EXPECT().Identify(gomock.Any(), imagen).Return("res-inq", nil)

	res, err := s.uc.Verify(context.Background(), imagen)
	s.Require().NoError(err)
	s.True(res.Valido)
	s.Equal(access.MsgRostroVerificado, res.Mensaje)
	s.False(res.EsPropietario)
	s.Equal("Luis Gómez", res.Residente.Nombre)
	s.Equal("Torre B - 202", res.Residente.Unidad)
	s.Nil(res.Residente.FotoPerfil)
}

func (s *FacialSuite) TestSinCoincidenciaUsaPrimerPropietario() {
	s.verifier.EXPECT().Identify(gomock.Any(), imagen).Return("", nil)

	res, err := s.uc.Verify(context.Background(), imagen)
	s.Require().NoError(err)
	s.True(res.EsPropietario)
	s.Equal("Ana Pérez", res.Residente.Nombre)
	s.Require().NotNil(res.Residente.FotoPerfil)
	s.Equal("https://media.condominio.test/residentes/fotos/ana.jpg", *res.Residente.FotoPerfil)
}

func (s *FacialSuite) TestServicioCaidoUsaPrimerPropietario() {
	s.verifier.EXPECT().Identify(gomock.Any(), imagen).Return("", errors.New("timeout"))

	res, err := s.uc.Verify(context.Background(), imagen)
	s.Require().NoError(err)
	s.True(res.Valido)
	s.Equal("Ana Pérez", res.Residente.Nombre)
}

func (s *FacialSuite) TestIDReconocidoInexistenteUsaPrimerPropietario() {
	s.verifier.EXPECT().Identify(gomock.Any(), imagen).Return("fantasma", nil)

	res, err := s.uc.Verify(context.Background(), imagen)
	s.Require().NoError(err)
	s.Equal("Ana Pérez", res.Residente.Nombre)
}

func (s *FacialSuite) TestSinPropietariosRespuestaDemo() {
	store := memory.NewStore()
	store.AddResidente(entity.Residente{ID: "r", Nombre: "Inquilino", UnidadID: "u"})
	uc := access.NewFacialUseCase(nil, memory.NewResidenteRepository(store), nil, nil, "")

	res, err := uc.Verify(context.Background(), imagen)
	s.Require().NoError(err)
	s.True(res.Valido)
	s.Equal(access.MsgRostroDemo, res.Mensaje)
	s.True(res.EsPropietario)
	s.Equal("Residente Demo", res.Residente.Nombre)
	s.Equal("A-101 (Demo)", res.Residente.Unidad)
	s.Nil(res.Residente.FotoPerfil)
}

func (s *FacialSuite) TestImagenRequerida() {
	_, err := s.uc.Verify(context.Background(), nil)
	s.ErrorIs(err, domain.ErrInvalidInput)
}
