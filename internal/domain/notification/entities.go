package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

// In-app notification addressed to a requester or admin.
type Notification struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipientID string    `gorm:"column:recipient_id;type:char(32);not null;index:idx_notifications_recipient" json:"recipient_id"`
	Message     string    `gorm:"column:message;type:text;not null" json:"message"`
	Read        bool      `gorm:"column:is_read;not null;default:false" json:"read"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
