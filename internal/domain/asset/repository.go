package asset

import "context"

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByAssetID(ctx context.Context, assetID string) (*Asset, error)
	// GetByAssetIDForUpdate locks the asset row for the duration of the
	// surrounding transaction.
	GetByAssetIDForUpdate(ctx context.Context, assetID string) (*Asset, error)
	List(ctx context.Context) ([]Asset, error)
	Save(ctx context.Context, a *Asset) error
}
