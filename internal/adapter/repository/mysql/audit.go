package mysql

import (
	"context"

	auditDomain "assettrack-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]auditDomain.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []auditDomain.Entry
	err := r.db.WithContext(ctx).
		Order("performed_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
