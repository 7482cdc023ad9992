package assetmock

import (
	"context"

	domain "assettrack-backend/internal/domain/asset"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; unfilled getters return context.Canceled.
type Repo struct {
	CreateFn                func(ctx context.Context, a *domain.Asset) error
	GetByAssetIDFn          func(ctx context.Context, assetID string) (*domain.Asset, error)
	GetByAssetIDForUpdateFn func(ctx context.Context, assetID string) (*domain.Asset, error)
	ListFn                  func(ctx context.Context) ([]domain.Asset, error)
	SaveFn                  func(ctx context.Context, a *domain.Asset) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Asset) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAssetID(ctx context.Context, assetID string) (*domain.Asset, error) {
	if m.GetByAssetIDFn != nil {
		return m.GetByAssetIDFn(ctx, assetID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByAssetIDForUpdate(ctx context.Context, assetID string) (*domain.Asset, error) {
	if m.GetByAssetIDForUpdateFn != nil {
		return m.GetByAssetIDForUpdateFn(ctx, assetID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Asset, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Asset) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
