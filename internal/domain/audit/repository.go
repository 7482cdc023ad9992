package audit

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}
