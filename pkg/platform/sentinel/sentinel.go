package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and callers test them with errors.Is:
//   - ErrNotFound: the row does not exist in the store
//   - ErrUnavailable: the backing store cannot be reached
//   - ErrUnauthorized: no authenticated caller could be established
var (
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)
