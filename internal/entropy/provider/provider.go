// Package provider turns the ordered tier chain into a total draw operation:
// every call returns an index in [0, limit), whatever the network does.
package provider

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"augur/internal/entropy/metrics"
	"augur/internal/entropy/models"
	"augur/internal/entropy/tier"
)

const tracerName = "augur/internal/entropy/provider"

// Provider walks the remote tiers in priority order and falls back to the
// terminal tier. It holds no mutable state and is safe for concurrent use.
type Provider struct {
	tiers    []tier.Tier
	terminal tier.Terminal
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Provider)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Provider) {
		p.metrics = m
	}
}

// New builds a provider over tiers (highest quality first) ending in terminal.
func New(tiers []tier.Tier, terminal tier.Terminal, opts ...Option) *Provider {
	p := &Provider{
		tiers:    tiers,
		terminal: terminal,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Draw returns an index in [0, limit). Collections of size 0 or 1 short-circuit
// without touching any tier. The first remote tier to succeed wins; failures
// fall through to the next tier without retry.
func (p *Provider) Draw(ctx context.Context, limit int) models.DrawResult {
	if limit <= 1 {
		p.metrics.IncrementDraws(models.ProvenanceDeterministic)
		return models.Deterministic()
	}

	for _, t := range p.tiers {
		res, err := p.attempt(ctx, t, limit)
		if err != nil {
			p.logger.Debug("entropy tier failed", "tier", string(t.Name()), "category", string(tier.CategoryOf(err)), "error", err)
			p.metrics.IncrementTierFailures(t.Name(), string(tier.CategoryOf(err)))
			continue
		}
		p.metrics.IncrementDraws(res.Provenance)
		return res
	}

	res := p.terminal.Draw(limit)
	p.metrics.IncrementDraws(res.Provenance)
	return res
}

func (p *Provider) attempt(ctx context.Context, t tier.Tier, limit int) (models.DrawResult, error) {
	ctx, span := p.tracer.Start(ctx, "entropy.tier.attempt", trace.WithAttributes(
		attribute.String("entropy.tier", string(t.Name())),
		attribute.Int("entropy.limit", limit),
	))
	defer span.End()

	res, err := t.Attempt(ctx, limit)
	if err == nil && (res.Index < 0 || res.Index >= limit) {
		err = tier.NewError(tier.CategoryBadData, t.Name(), fmt.Sprintf("index %d outside [0, %d)", res.Index, limit), nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(tier.CategoryOf(err)))
		return models.DrawResult{}, err
	}
	return res, nil
}
