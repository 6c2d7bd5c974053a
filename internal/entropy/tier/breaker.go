package tier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"augur/internal/entropy/models"
)

// BreakerSettings configures the per-tier circuit breaker.
type BreakerSettings struct {
	// Threshold is the number of consecutive failures that opens the circuit.
	Threshold uint32
	// Cooldown is how long the circuit stays open before one probe is let through.
	Cooldown time.Duration
}

// breakerTier skips a remote tier while it keeps failing, so a dead service
// does not cost its full timeout on every request.
type breakerTier struct {
	next Tier
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps t in a circuit breaker.
func WithBreaker(t Tier, settings BreakerSettings, logger *slog.Logger) Tier {
	threshold := settings.Threshold
	if threshold == 0 {
		threshold = 5
	}
	cooldown := settings.Cooldown
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        string(t.Name()),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller giving up says nothing about the tier's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Info("entropy tier breaker state changed", "tier", name, "from", from.String(), "to", to.String())
			}
		},
	})
	return &breakerTier{next: t, cb: cb}
}

func (b *breakerTier) Name() models.Provenance { return b.next.Name() }

func (b *breakerTier) Attempt(ctx context.Context, limit int) (models.DrawResult, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Attempt(ctx, limit)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.DrawResult{}, NewError(CategoryCircuitOpen, b.next.Name(), "circuit open", err)
		}
		return models.DrawResult{}, err
	}
	return res.(models.DrawResult), nil
}
