package notifmock

import (
	"context"

	domain "assettrack-backend/internal/domain/notification"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, n *domain.Notification) error
	ListByRecipientFn func(ctx context.Context, recipientID string) ([]domain.Notification, error)
	MarkReadFn        func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	if m.ListByRecipientFn != nil {
		return m.ListByRecipientFn(ctx, recipientID)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkRead(ctx context.Context, id uint64) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id)
	}
	return nil
}
