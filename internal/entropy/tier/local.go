package tier

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"augur/internal/entropy/models"
)

// Local is the terminal tier: a draw from the OS CSPRNG. It never touches the
// network.
type Local struct {
	reader io.Reader
}

// NewLocal creates the terminal tier backed by crypto/rand.
func NewLocal() *Local {
	return &Local{reader: rand.Reader}
}

// NewLocalFromReader creates a terminal tier over an arbitrary byte source.
func NewLocalFromReader(r io.Reader) *Local {
	return &Local{reader: r}
}

func (l *Local) Name() models.Provenance { return models.ProvenancePseudo }

// Draw returns a uniform index in [0, limit). A failing entropy source is
// unrecoverable and panics.
func (l *Local) Draw(limit int) models.DrawResult {
	if limit <= 1 {
		return models.Deterministic()
	}
	n, err := rand.Int(l.reader, big.NewInt(int64(limit)))
	if err != nil {
		panic(fmt.Errorf("local entropy source failed: %w", err))
	}
	return models.DrawResult{Index: int(n.Int64()), Provenance: models.ProvenancePseudo}
}
