package request

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDeclined  Status = "DECLINED"
	StatusCancelled Status = "CANCELLED"
	StatusComplete  Status = "COMPLETE"
)

// Active reports whether the request still occupies its (asset, requester)
// slot for duplicate detection.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// Terminal states accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDeclined || s == StatusCancelled || s == StatusComplete
}

type BorrowRequest struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_borrow_requests_request_id" json:"request_id"`
	// Public asset identifier; the asset row is the source of truth for
	// availability, the request never caches its status.
	AssetID     string  `gorm:"column:asset_id;type:char(32);not null;index:idx_borrow_requests_asset" json:"asset_id"`
	RequesterID string  `gorm:"column:requester_id;type:char(32);not null;index:idx_borrow_requests_requester" json:"requester_id"`
	Status      Status  `gorm:"column:status;type:enum('PENDING','APPROVED','DECLINED','CANCELLED','COMPLETE');default:'PENDING'" json:"status"`
	Note        string  `gorm:"column:note;type:text" json:"note,omitempty"`
	// Set only on decline, stored verbatim, audit-only.
	DeclineReason string     `gorm:"column:decline_reason;type:text" json:"decline_reason,omitempty"`
	ProcessedBy   *string    `gorm:"column:processed_by;type:char(32)" json:"processed_by,omitempty"`
	RequestedAt   time.Time  `gorm:"column:requested_at;not null" json:"requested_at"`
	ProcessedAt   *time.Time `gorm:"column:processed_at" json:"processed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (BorrowRequest) TableName() string { return "borrow_requests" }
