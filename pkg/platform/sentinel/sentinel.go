package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Clients and caches return these
// (optionally wrapped) so callers can branch on them without string matching.
//
// - ErrNotFound: the remote resource or cache entry does not exist
// - ErrUnavailable: the remote service could not be reached or refused to answer
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
