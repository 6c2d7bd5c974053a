package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	emodels "augur/internal/entropy/models"
	"augur/internal/lexicon"
	"augur/internal/oracle/models"
	"augur/internal/oracle/service/mocks"
	"augur/internal/tokens"
)

type ServiceSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	drawer *mocks.MockDrawer
	buffer *mocks.MockSequence
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.drawer = mocks.NewMockDrawer(s.ctrl)
	s.buffer = mocks.NewMockSequence(s.ctrl)
}

func (s *ServiceSuite) newService(list *tokens.List, lex *lexicon.Lexicon) *Service {
	return New(s.drawer, s.buffer, list, lex)
}

func (s *ServiceSuite) TestDrawIndex_DelegatesToDrawer() {
	want := emodels.DrawResult{Index: 41, Provenance: emodels.ProvenancePhysical}
	s.drawer.EXPECT().Draw(gomock.Any(), 50).Return(want).Times(1)

	got := s.newService(tokens.New(), lexicon.Empty()).DrawIndex(s.ctx, 50)
	s.Equal(want, got)
}

func (s *ServiceSuite) TestNextBufferedIndex_DelegatesToBuffer() {
	want := emodels.DrawResult{Index: 2, Provenance: emodels.ProvenanceQuantum}
	s.buffer.EXPECT().Next(gomock.Any()).Return(want).Times(1)

	got := s.newService(tokens.New("a", "b", "c"), lexicon.Empty()).NextBufferedIndex(s.ctx)
	s.Equal(want, got)
}

func (s *ServiceSuite) TestGenerateToken() {
	s.Run("draws from the buffer", func() {
		s.buffer.EXPECT().Next(gomock.Any()).
			Return(emodels.DrawResult{Index: 1, Provenance: emodels.ProvenanceFallback}).Times(1)

		got := s.newService(tokens.New("sun", "moon", "star"), lexicon.Empty()).GenerateToken(s.ctx)
		s.Equal(models.Token{Token: "moon", Source: emodels.ProvenanceFallback}, got)
	})

	s.Run("empty library yields void without drawing", func() {
		s.buffer.EXPECT().Next(gomock.Any()).Times(0)

		got := s.newService(tokens.New(), lexicon.Empty()).GenerateToken(s.ctx)
		s.Equal(models.Token{Token: models.VoidWord, Source: emodels.ProvenanceDeterministic}, got)
	})
}

func (s *ServiceSuite) TestGenerateThought_RollDrawnFirst() {
	gomock.InOrder(
		s.drawer.EXPECT().Draw(gomock.Any(), 100).
			Return(emodels.DrawResult{Index: 75, Provenance: emodels.ProvenanceAtmospheric}),
		s.drawer.EXPECT().Draw(gomock.Any(), 5).
			Return(emodels.DrawResult{Index: 4, Provenance: emodels.ProvenanceQuantum}),
	)

	got := s.newService(tokens.New(), lexicon.New(nil)).GenerateThought(s.ctx)
	s.Equal(models.Thought{Message: "thou void void", Source: emodels.ProvenanceAtmospheric}, got)
}
