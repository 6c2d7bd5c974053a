package provider

import (
	"log/slog"

	"augur/internal/entropy/models"
	"augur/internal/entropy/tier"
	"augur/internal/platform/config"
)

// RemoteTiers builds the default remote chain: quantum, classical,
// atmospheric. Each tier gets its own circuit breaker when enabled.
func RemoteTiers(cfg config.EntropyConfig, client tier.HTTPDoer, logger *slog.Logger) []tier.Tier {
	tiers := []tier.Tier{
		tier.NewHexTier(models.ProvenanceQuantum, cfg.QuantumURL, cfg.TierTimeout, client),
		tier.NewHexTier(models.ProvenancePhysical, cfg.ClassicalURL, cfg.TierTimeout, client),
		tier.NewDecimalTier(models.ProvenanceAtmospheric, cfg.AtmosphericURL, cfg.AtmosphericTimeout, client),
	}
	if !cfg.BreakerEnabled {
		return tiers
	}

	settings := tier.BreakerSettings{Threshold: cfg.BreakerThreshold, Cooldown: cfg.BreakerCooldown}
	for i, t := range tiers {
		tiers[i] = tier.WithBreaker(t, settings, logger)
	}
	return tiers
}

// BulkSource builds the bulk fetcher used by the prefetch buffer. It talks to
// the same service as the highest tier.
func BulkSource(cfg config.EntropyConfig, client tier.HTTPDoer) *tier.HexBulk {
	return tier.NewHexBulk(models.ProvenanceQuantum, cfg.BulkURL, cfg.BulkTimeout, client)
}
