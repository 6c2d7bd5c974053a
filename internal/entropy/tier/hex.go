package tier

import (
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"time"

	"augur/internal/entropy/models"
)

// bitsResponse is the JSON shape returned by the CU Boulder randomness beacon.
type bitsResponse struct {
	Bits string `json:"bits"`
}

// HexTier draws from an endpoint answering {"bits": "<hex>"}. The hex value is
// read as one unsigned integer and reduced modulo the limit.
type HexTier struct {
	name    models.Provenance
	url     string
	timeout time.Duration
	client  HTTPDoer
}

// NewHexTier creates a tier for a JSON hex endpoint.
func NewHexTier(name models.Provenance, url string, timeout time.Duration, client HTTPDoer) *HexTier {
	return &HexTier{name: name, url: url, timeout: timeout, client: client}
}

func (t *HexTier) Name() models.Provenance { return t.name }

func (t *HexTier) Attempt(ctx context.Context, limit int) (models.DrawResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	body, err := get(ctx, t.client, t.name, t.url)
	if err != nil {
		return models.DrawResult{}, err
	}

	bits, err := DecodeBits(body)
	if err != nil {
		return models.DrawResult{}, NewError(CategoryBadData, t.name, "decode bits", err)
	}
	value, err := ParseHex(bits)
	if err != nil {
		return models.DrawResult{}, NewError(CategoryBadData, t.name, "parse bits", err)
	}

	return models.DrawResult{Index: Reduce(value, limit), Provenance: t.name}, nil
}

// DecodeBits extracts the non-empty "bits" field from a beacon response.
func DecodeBits(body []byte) (string, error) {
	var resp bitsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	bits := strings.TrimSpace(resp.Bits)
	if bits == "" {
		return "", strconv.ErrSyntax
	}
	return bits, nil
}

// ParseHex parses an arbitrary length hexadecimal string. An optional 0x
// prefix is accepted; anything else outside [0-9a-fA-F] is rejected.
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if !IsHex(s) {
		return nil, strconv.ErrSyntax
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, strconv.ErrSyntax
	}
	return v, nil
}

// Reduce maps v onto [0, limit). limit must be positive.
func Reduce(v *big.Int, limit int) int {
	return int(new(big.Int).Mod(v, big.NewInt(int64(limit))).Int64())
}

// IsHex reports whether s is a non-empty run of hex digits.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
