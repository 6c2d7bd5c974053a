//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Package service exposes the oracle operations: raw index draws, buffered
// token draws and generated thoughts. Every operation is total.
package service

import (
	"context"
	"log/slog"

	emodels "augur/internal/entropy/models"
	"augur/internal/lexicon"
	"augur/internal/oracle/models"
	"augur/internal/tokens"
)

// Drawer returns an index in [0, limit) and its provenance. It never fails.
type Drawer interface {
	Draw(ctx context.Context, limit int) emodels.DrawResult
}

// Sequence yields pre-drawn indices for one fixed collection size.
type Sequence interface {
	Next(ctx context.Context) emodels.DrawResult
}

type Service struct {
	drawer  Drawer
	buffer  Sequence
	tokens  *tokens.List
	grammar *Grammar
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New wires the service. buffer must be bound to tokens.Len().
func New(drawer Drawer, buffer Sequence, list *tokens.List, lex *lexicon.Lexicon, opts ...Option) *Service {
	s := &Service{
		drawer:  drawer,
		buffer:  buffer,
		tokens:  list,
		grammar: NewGrammar(lex, drawer),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DrawIndex returns one index in [0, limit) straight from the provider chain.
func (s *Service) DrawIndex(ctx context.Context, limit int) emodels.DrawResult {
	return s.drawer.Draw(ctx, limit)
}

// NextBufferedIndex returns the next pre-drawn index into the token list.
func (s *Service) NextBufferedIndex(ctx context.Context) emodels.DrawResult {
	return s.buffer.Next(ctx)
}

func (s *Service) GenerateThought(ctx context.Context) models.Thought {
	thought := s.grammar.Compose(ctx)
	s.logger.DebugContext(ctx, "thought generated", "source", string(thought.Source))
	return thought
}

// GenerateToken draws one token from the library. An empty library yields
// the void word with DETERMINISTIC provenance.
func (s *Service) GenerateToken(ctx context.Context) models.Token {
	if s.tokens == nil || s.tokens.Len() == 0 {
		return models.Token{Token: models.VoidWord, Source: emodels.ProvenanceDeterministic}
	}
	res := s.buffer.Next(ctx)
	return models.Token{Token: s.tokens.At(res.Index), Source: res.Provenance}
}
