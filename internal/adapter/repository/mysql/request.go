package mysql

import (
	"context"

	requestDomain "assettrack-backend/internal/domain/request"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, br *requestDomain.BorrowRequest) error {
	return r.db.WithContext(ctx).Create(br).Error
}

func (r *RequestRepository) Save(ctx context.Context, br *requestDomain.BorrowRequest) error {
	return r.db.WithContext(ctx).Save(br).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.BorrowRequest, error) {
	var out requestDomain.BorrowRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

// GetByRequestIDForUpdate locks the request row, serializing transitions on
// one request.
func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.BorrowRequest, error) {
	var out requestDomain.BorrowRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) ListByStatus(ctx context.Context, s requestDomain.Status) ([]requestDomain.BorrowRequest, error) {
	var out []requestDomain.BorrowRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("requested_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]requestDomain.BorrowRequest, error) {
	var out []requestDomain.BorrowRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("requested_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) HasActiveRequest(ctx context.Context, assetID, requesterID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&requestDomain.BorrowRequest{}).
		Where("asset_id = ? AND requester_id = ? AND status IN ?",
			assetID, requesterID,
			[]requestDomain.Status{requestDomain.StatusPending, requestDomain.StatusApproved}).
		Count(&n).Error
	return n > 0, err
}

func (r *RequestRepository) HasActiveRequestForAsset(ctx context.Context, assetID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&requestDomain.BorrowRequest{}).
		Where("asset_id = ? AND status IN ?",
			assetID,
			[]requestDomain.Status{requestDomain.StatusPending, requestDomain.StatusApproved}).
		Count(&n).Error
	return n > 0, err
}
