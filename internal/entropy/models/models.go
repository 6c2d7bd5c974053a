package models

// Provenance names the source that produced a draw.
type Provenance string

const (
	ProvenanceQuantum       Provenance = "QUANTUM (CUB)"
	ProvenancePhysical      Provenance = "PHYSICAL (CUB CLASSICAL)"
	ProvenanceAtmospheric   Provenance = "ATMOSPHERIC (RANDOM.ORG)"
	ProvenancePseudo        Provenance = "PSEUDO (LOCAL SECRETS)"
	ProvenanceDeterministic Provenance = "DETERMINISTIC"
	// ProvenanceFallback marks a buffered draw served directly because the
	// bulk refill failed.
	ProvenanceFallback Provenance = "PSEUDO (FALLBACK)"
)

// DrawResult is one bounded index and where it came from.
type DrawResult struct {
	Index      int
	Provenance Provenance
}

// Deterministic is the result for collections of size 0 or 1.
func Deterministic() DrawResult {
	return DrawResult{Index: 0, Provenance: ProvenanceDeterministic}
}
