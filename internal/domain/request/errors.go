package request

import "errors"

var (
	ErrNotFound = errors.New("borrow request not found")
	// ErrDuplicateRequest: an active (PENDING/APPROVED) request already
	// exists for the same (asset, requester) pair.
	ErrDuplicateRequest = errors.New("active borrow request already exists for this asset and requester")
	// ErrInvalidTransition: the trigger does not apply to the request's
	// current status. Indicates stale client state, never retried.
	ErrInvalidTransition = errors.New("operation not allowed in current request status")
	// ErrAssetUnavailable: the asset status precondition failed; the request
	// is left unchanged so an admin can retry or decline manually.
	ErrAssetUnavailable = errors.New("asset is not available")
	ErrUnauthorized     = errors.New("caller is not allowed to perform this transition")
)
