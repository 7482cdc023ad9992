package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type assetSQLite struct {
	ID           uint64     `gorm:"primaryKey;column:id"`
	AssetID      string     `gorm:"column:asset_id;size:32;uniqueIndex"`
	Name         string     `gorm:"column:name"`
	SerialNumber string     `gorm:"column:serial_number;uniqueIndex"`
	Category     string     `gorm:"column:category"`
	Cost         float64    `gorm:"column:cost"`
	PurchaseDate *time.Time `gorm:"column:purchase_date"`
	ImageURL     string     `gorm:"column:image_url"`
	State        string     `gorm:"type:text;column:status"` // ← no enum
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (assetSQLite) TableName() string { return "assets" }

type requestSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	RequestID     string     `gorm:"column:request_id;size:32;uniqueIndex"`
	AssetID       string     `gorm:"column:asset_id;size:32;index"`
	RequesterID   string     `gorm:"column:requester_id;size:32;index"`
	State         string     `gorm:"type:text;column:status"` // ← no enum
	Note          string     `gorm:"column:note"`
	DeclineReason string     `gorm:"column:decline_reason"`
	ProcessedBy   *string    `gorm:"column:processed_by"`
	RequestedAt   time.Time  `gorm:"column:requested_at"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (requestSQLite) TableName() string { return "borrow_requests" }

type auditSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	EntityName  string    `gorm:"column:entity_name"`
	EntityID    string    `gorm:"column:entity_id"`
	Action      string    `gorm:"column:action"`
	OldValue    string    `gorm:"column:old_value"`
	NewValue    string    `gorm:"column:new_value"`
	PerformedBy string    `gorm:"column:performed_by"`
	PerformedAt time.Time `gorm:"column:performed_at"`
}

func (auditSQLite) TableName() string { return "audit_entries" }

type notificationSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	RecipientID string    `gorm:"column:recipient_id;size:32;index"`
	Message     string    `gorm:"column:message"`
	Read        bool      `gorm:"column:is_read"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// mirror schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&assetSQLite{}, &requestSQLite{}, &auditSQLite{}, &notificationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
