package audit

import "time"

// Workflow actions recorded in the audit trail.
const (
	ActionBorrowRequested = "BORROW_REQUESTED"
	ActionBorrowApproved  = "BORROW_APPROVED"
	ActionBorrowDeclined  = "BORROW_DECLINED"
	ActionBorrowCancelled = "BORROW_CANCELLED"
	ActionBorrowCompleted = "BORROW_COMPLETED"
	ActionAssetCreated    = "ASSET_CREATED"
	ActionStatusChanged   = "STATUS_CHANGED"
)

type Entry struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EntityName string    `gorm:"column:entity_name;size:100;not null" json:"entity_name"`
	// Public id of the subject row (request_id or asset_id)
	EntityID    string    `gorm:"column:entity_id;type:char(32);not null;index:idx_audit_entries_entity" json:"entity_id"`
	Action      string    `gorm:"column:action;size:50;not null" json:"action"`
	OldValue    string    `gorm:"column:old_value;type:text" json:"old_value,omitempty"`
	NewValue    string    `gorm:"column:new_value;type:text" json:"new_value,omitempty"`
	PerformedBy string    `gorm:"column:performed_by;size:100;not null" json:"performed_by"`
	PerformedAt time.Time `gorm:"column:performed_at;not null" json:"performed_at"`
}

func (Entry) TableName() string { return "audit_entries" }
