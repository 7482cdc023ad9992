package auditmock

import (
	"context"

	domain "assettrack-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, e *domain.Entry) error
	ListRecentFn func(ctx context.Context, limit int) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, context.Canceled
}
