package tier

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"augur/internal/entropy/models"
)

// bitsPlaceholder is substituted with the requested bit count.
const bitsPlaceholder = "{bits}"

// HexBulk fetches a long hex blob from the highest tier in one request.
type HexBulk struct {
	name    models.Provenance
	url     string
	timeout time.Duration
	client  HTTPDoer
}

// NewHexBulk creates a bulk source. urlTemplate must contain {bits}.
func NewHexBulk(name models.Provenance, urlTemplate string, timeout time.Duration, client HTTPDoer) *HexBulk {
	return &HexBulk{name: name, url: urlTemplate, timeout: timeout, client: client}
}

func (b *HexBulk) Name() models.Provenance { return b.name }

// Fetch returns at least digits hex characters of entropy.
func (b *HexBulk) Fetch(ctx context.Context, digits int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	url := strings.ReplaceAll(b.url, bitsPlaceholder, strconv.Itoa(digits*4))
	body, err := get(ctx, b.client, b.name, url)
	if err != nil {
		return "", err
	}

	bits, err := DecodeBits(body)
	if err != nil {
		return "", NewError(CategoryBadData, b.name, "decode bulk bits", err)
	}
	bits = strings.TrimPrefix(strings.TrimPrefix(bits, "0x"), "0X")
	if !IsHex(bits) {
		return "", NewError(CategoryBadData, b.name, "non-hex payload", nil)
	}
	if len(bits) < digits {
		return "", NewError(CategoryBadData, b.name, fmt.Sprintf("short payload: %d of %d digits", len(bits), digits), nil)
	}
	return bits, nil
}
