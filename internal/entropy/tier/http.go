package tier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"augur/internal/entropy/models"
)

// maxBody caps how much of a response we are willing to read. Bulk payloads
// are a few KiB of hex; anything larger is not a randomness service.
const maxBody = 1 << 20

// HTTPDoer is the subset of *http.Client the remote tiers use.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// get issues one GET bounded by ctx and classifies every failure mode.
func get(ctx context.Context, client HTTPDoer, name models.Provenance, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewError(CategoryInternal, name, "build request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyTransport(ctx, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, NewError(CategoryBadStatus, name, fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, classifyTransport(ctx, name, err)
	}
	return body, nil
}

func classifyTransport(ctx context.Context, name models.Provenance, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return NewError(CategoryTimeout, name, "deadline exceeded", err)
	}
	return NewError(CategoryTransport, name, "request failed", err)
}
