package uowmock

import (
	"context"
	"errors"

	"assettrack-backend/internal/domain/request"
	"assettrack-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequestTxFn func(ctx context.Context, requestID string, fn func(r uow.Repos, br *request.BorrowRequest) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW whose transactions simply run fn against the
// given repos, with WithinRequestTx resolving the request through
// r.Requests.GetByRequestIDForUpdate. Covers the common test wiring.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinRequestTxFn: func(ctx context.Context, requestID string, fn func(r uow.Repos, br *request.BorrowRequest) error) error {
			br, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
			if err != nil {
				return request.ErrNotFound
			}
			return fn(r, br)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, br *request.BorrowRequest) error) error {
	if m.WithinRequestTxFn != nil {
		return m.WithinRequestTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}
