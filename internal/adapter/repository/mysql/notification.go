package mysql

import (
	"context"

	notifDomain "assettrack-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).
		Model(&notifDomain.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notifDomain.ErrNotFound
	}
	return nil
}
