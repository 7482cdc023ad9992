package uow

import (
	"context"

	"assettrack-backend/internal/domain/asset"
	"assettrack-backend/internal/domain/audit"
	"assettrack-backend/internal/domain/notification"
	"assettrack-backend/internal/domain/request"
)

type Repos struct {
	Assets        asset.Repository
	Requests      request.Repository
	Audits        audit.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, br *request.BorrowRequest) error) error
}
