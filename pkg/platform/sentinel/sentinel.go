package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Tiers, loaders and stores return
// these (optionally wrapped) so callers can branch on them with errors.Is.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: a file or record does not exist
// - ErrUnavailable: a remote service did not answer in time or at all
// - ErrBadData: a remote service or file answered with something unusable
// - ErrInvalidConfig: configuration cannot produce a working component
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnavailable   = errors.New("unavailable")
	ErrBadData       = errors.New("bad data")
	ErrInvalidConfig = errors.New("invalid config")
)
