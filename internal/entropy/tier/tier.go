//go:generate mockgen -source=tier.go -destination=mocks/mocks.go -package=mocks

// Package tier implements the individual entropy sources of the fallback
// chain: remote HTTP services that can fail, and the local terminal source
// that cannot.
package tier

import (
	"context"

	"augur/internal/entropy/models"
)

// Tier is one fallible source in the chain. Attempt either returns a draw in
// [0, limit) or an *Error describing why this tier produced nothing.
// Implementations bound their own latency; callers do not retry.
type Tier interface {
	Name() models.Provenance
	Attempt(ctx context.Context, limit int) (models.DrawResult, error)
}

// Terminal is the last source in the chain. It has no error return: it must
// always produce a draw.
type Terminal interface {
	Name() models.Provenance
	Draw(limit int) models.DrawResult
}
