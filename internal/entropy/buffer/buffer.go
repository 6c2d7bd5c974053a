//go:generate mockgen -source=buffer.go -destination=mocks/mocks.go -package=mocks

// Package buffer amortizes one bulk entropy fetch over many index draws for a
// single, fixed collection size.
package buffer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"augur/internal/entropy/metrics"
	"augur/internal/entropy/models"
	"augur/pkg/platform/sentinel"
)

const (
	tracerName = "augur/internal/entropy/buffer"

	// maxRefillRounds bounds how often one Next call will wait on a refill
	// whose batch was drained by other callers before falling back.
	maxRefillRounds = 2

	DefaultBatch       = 64
	DefaultChunkDigits = 8
)

// BulkSource returns at least digits hex characters of entropy in one request.
type BulkSource interface {
	Name() models.Provenance
	Fetch(ctx context.Context, digits int) (string, error)
}

// Drawer serves a single draw when the bulk path is unavailable.
type Drawer interface {
	Draw(ctx context.Context, limit int) models.DrawResult
}

// RefillError reports a failed bulk refill.
type RefillError struct {
	Source models.Provenance
	Err    error
}

func (e *RefillError) Error() string {
	return fmt.Sprintf("refill from %s: %v", e.Source, e.Err)
}

func (e *RefillError) Unwrap() error {
	return e.Err
}

// Buffer is a FIFO of pre-computed draws, all reduced against the same limit.
// Dequeue is atomic and refill is single-flight: concurrent callers that find
// the queue empty share one bulk fetch.
type Buffer struct {
	limit    int
	batch    int
	width    int
	source   BulkSource
	fallback Drawer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer

	mu     sync.Mutex
	queue  []models.DrawResult
	refill singleflight.Group
}

type Option func(*Buffer)

// WithBatch sets how many draws one refill yields.
func WithBatch(n int) Option {
	return func(b *Buffer) {
		b.batch = n
	}
}

// WithChunkDigits sets how many hex digits back each draw.
func WithChunkDigits(n int) Option {
	return func(b *Buffer) {
		b.width = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Buffer) {
		b.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Buffer) {
		b.metrics = m
	}
}

// New creates an empty buffer bound to limit. The first Next call triggers
// the first refill.
func New(limit int, source BulkSource, fallback Drawer, opts ...Option) (*Buffer, error) {
	b := &Buffer{
		limit:    limit,
		batch:    DefaultBatch,
		width:    DefaultChunkDigits,
		source:   source,
		fallback: fallback,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(b)
	}

	switch {
	case source == nil || fallback == nil:
		return nil, fmt.Errorf("%w: buffer requires a bulk source and a fallback drawer", sentinel.ErrInvalidConfig)
	case b.batch <= 0:
		return nil, fmt.Errorf("%w: batch must be positive, got %d", sentinel.ErrInvalidConfig, b.batch)
	case b.width <= 0 || b.width > 15:
		return nil, fmt.Errorf("%w: chunk digits must be in [1, 15], got %d", sentinel.ErrInvalidConfig, b.width)
	}
	return b, nil
}

// Limit is the collection size every buffered draw was reduced against.
func (b *Buffer) Limit() int {
	return b.limit
}

// Len is the number of draws currently queued.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Next dequeues one draw, refilling first if the queue is empty. If the
// refill fails the draw is served directly by the fallback drawer and tagged
// PSEUDO (FALLBACK). Next never fails.
func (b *Buffer) Next(ctx context.Context) models.DrawResult {
	if b.limit <= 1 {
		return models.Deterministic()
	}

	refillFailed := false
	for round := 0; round < maxRefillRounds; round++ {
		if res, ok := b.pop(); ok {
			return res
		}

		_, err, _ := b.refill.Do("refill", func() (any, error) {
			return nil, b.fill(context.WithoutCancel(ctx))
		})
		if err != nil {
			b.logger.Warn("entropy buffer refill failed, drawing directly", "limit", b.limit, "error", err)
			refillFailed = true
			break
		}
	}

	if res, ok := b.pop(); ok {
		return res
	}
	return b.drawDirect(ctx, refillFailed)
}

// drawDirect serves one draw without the queue. Only a failed refill earns
// the PSEUDO (FALLBACK) label; when other callers merely drained successful
// refills, the draw keeps the provenance of the tier that produced it.
func (b *Buffer) drawDirect(ctx context.Context, refillFailed bool) models.DrawResult {
	res := b.fallback.Draw(ctx, b.limit)
	if refillFailed {
		b.metrics.IncrementBufferFallback()
		res.Provenance = models.ProvenanceFallback
	}
	return res
}

func (b *Buffer) pop() (models.DrawResult, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.queue) == 0 {
		return models.DrawResult{}, false
	}
	res := b.queue[0]
	b.queue[0] = models.DrawResult{}
	b.queue = b.queue[1:]
	b.metrics.SetBufferDepth(len(b.queue))
	return res, true
}

// fill fetches and enqueues one batch unless another caller already did.
func (b *Buffer) fill(ctx context.Context) error {
	if b.Len() > 0 {
		return nil
	}

	ctx, span := b.tracer.Start(ctx, "entropy.buffer.refill", trace.WithAttributes(
		attribute.String("entropy.source", string(b.source.Name())),
		attribute.Int("entropy.batch", b.batch),
	))
	defer span.End()

	results, err := b.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refill failed")
		b.metrics.IncrementRefills("failure")
		return err
	}

	b.mu.Lock()
	b.queue = append(b.queue, results...)
	b.metrics.SetBufferDepth(len(b.queue))
	b.mu.Unlock()

	b.metrics.IncrementRefills("success")
	return nil
}

func (b *Buffer) fetch(ctx context.Context) ([]models.DrawResult, error) {
	payload, err := b.source.Fetch(ctx, b.batch*b.width)
	if err != nil {
		return nil, &RefillError{Source: b.source.Name(), Err: err}
	}
	results, err := Decode(payload, b.batch, b.width, b.limit, b.source.Name())
	if err != nil {
		return nil, &RefillError{Source: b.source.Name(), Err: err}
	}
	return results, nil
}

// Decode splits payload into batch chunks of width hex digits and reduces
// each modulo limit, preserving order.
func Decode(payload string, batch, width, limit int, provenance models.Provenance) ([]models.DrawResult, error) {
	if len(payload) < batch*width {
		return nil, fmt.Errorf("%w: payload has %d digits, need %d", sentinel.ErrBadData, len(payload), batch*width)
	}

	results := make([]models.DrawResult, 0, batch)
	for i := 0; i < batch; i++ {
		chunk := payload[i*width : (i+1)*width]
		v, err := strconv.ParseUint(chunk, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d %q: %v", sentinel.ErrBadData, i, chunk, err)
		}
		results = append(results, models.DrawResult{
			Index:      int(v % uint64(limit)),
			Provenance: provenance,
		})
	}
	return results, nil
}
