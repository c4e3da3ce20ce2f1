package adapter

import "errors"

// Transport-agnostic failures of the remote changelog. The sync engine
// treats ErrUnreachable and ErrServerUnavailable as retryable.
var (
	ErrUnreachable       = errors.New("remote unreachable")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrRejected          = errors.New("request rejected by remote")
	ErrServerUnavailable = errors.New("remote temporarily unavailable")
	ErrInvalidResponse   = errors.New("invalid response from remote")
)
