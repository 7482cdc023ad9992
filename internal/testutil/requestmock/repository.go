package requestmock

import (
	"context"

	domain "assettrack-backend/internal/domain/request"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; unfilled getters return context.Canceled.
type Repo struct {
	CreateFn                   func(ctx context.Context, br *domain.BorrowRequest) error
	GetByRequestIDFn           func(ctx context.Context, requestID string) (*domain.BorrowRequest, error)
	GetByRequestIDForUpdateFn  func(ctx context.Context, requestID string) (*domain.BorrowRequest, error)
	SaveFn                     func(ctx context.Context, br *domain.BorrowRequest) error
	ListByStatusFn             func(ctx context.Context, s domain.Status) ([]domain.BorrowRequest, error)
	ListByRequesterFn          func(ctx context.Context, requesterID string) ([]domain.BorrowRequest, error)
	HasActiveRequestFn         func(ctx context.Context, assetID, requesterID string) (bool, error)
	HasActiveRequestForAssetFn func(ctx context.Context, assetID string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, br *domain.BorrowRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, br)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, br *domain.BorrowRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, br)
	}
	return nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.BorrowRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByRequester(ctx context.Context, requesterID string) ([]domain.BorrowRequest, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, requesterID)
	}
	return nil, context.Canceled
}

func (m *Repo) HasActiveRequest(ctx context.Context, assetID, requesterID string) (bool, error) {
	if m.HasActiveRequestFn != nil {
		return m.HasActiveRequestFn(ctx, assetID, requesterID)
	}
	return false, nil
}

func (m *Repo) HasActiveRequestForAsset(ctx context.Context, assetID string) (bool, error) {
	if m.HasActiveRequestForAssetFn != nil {
		return m.HasActiveRequestForAssetFn(ctx, assetID)
	}
	return false, nil
}
