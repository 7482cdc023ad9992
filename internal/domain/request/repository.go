package request

import "context"

type Repository interface {
	Create(ctx context.Context, br *BorrowRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*BorrowRequest, error)
	// GetByRequestIDForUpdate locks the request row so transitions on one
	// request are strictly serialized.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*BorrowRequest, error)
	Save(ctx context.Context, br *BorrowRequest) error
	ListByStatus(ctx context.Context, s Status) ([]BorrowRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]BorrowRequest, error)
	// HasActiveRequest answers the duplicate guard query for an
	// (asset, requester) pair. Must run inside the same transaction as the
	// subsequent insert.
	HasActiveRequest(ctx context.Context, assetID, requesterID string) (bool, error)
	// HasActiveRequestForAsset reports whether any requester holds an active
	// request on the asset; used by asset management before manual status
	// changes.
	HasActiveRequestForAsset(ctx context.Context, assetID string) (bool, error)
}
