package tier

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"augur/internal/entropy/models"
)

// maxPlaceholder is substituted with limit-1 in the URL template.
const maxPlaceholder = "{max}"

// DecimalTier draws from a plain-text endpoint (random.org) that already
// bounds its answer by the max in the query string.
type DecimalTier struct {
	name    models.Provenance
	url     string
	timeout time.Duration
	client  HTTPDoer
}

// NewDecimalTier creates a tier for a plain decimal endpoint. urlTemplate must
// contain {max}.
func NewDecimalTier(name models.Provenance, urlTemplate string, timeout time.Duration, client HTTPDoer) *DecimalTier {
	return &DecimalTier{name: name, url: urlTemplate, timeout: timeout, client: client}
}

func (t *DecimalTier) Name() models.Provenance { return t.name }

func (t *DecimalTier) Attempt(ctx context.Context, limit int) (models.DrawResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	url := strings.ReplaceAll(t.url, maxPlaceholder, strconv.Itoa(limit-1))
	body, err := get(ctx, t.client, t.name, url)
	if err != nil {
		return models.DrawResult{}, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return models.DrawResult{}, NewError(CategoryBadData, t.name, "parse integer", err)
	}
	if n < 0 || n >= limit {
		return models.DrawResult{}, NewError(CategoryBadData, t.name, fmt.Sprintf("value %d outside [0, %d)", n, limit), nil)
	}
	return models.DrawResult{Index: n, Provenance: t.name}, nil
}
