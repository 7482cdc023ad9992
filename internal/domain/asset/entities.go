package asset

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("asset not found")
	ErrReserved      = errors.New("asset has an active borrow request")
	ErrInvalidStatus = errors.New("invalid asset status")
)

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusInUse       Status = "IN_USE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusDamaged     Status = "DAMAGED"
	StatusRetired     Status = "RETIRED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusDamaged, StatusRetired:
		return true
	}
	return false
}

type Asset struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	AssetID      string     `gorm:"column:asset_id;type:char(32);not null;uniqueIndex:ux_assets_asset_id" json:"asset_id"`
	Name         string     `gorm:"column:name;size:100;not null" json:"name"`
	SerialNumber string     `gorm:"column:serial_number;size:120;not null;uniqueIndex:ux_assets_serial" json:"serial_number"`
	Category     string     `gorm:"column:category;size:100" json:"category"`
	Cost         float64    `gorm:"column:cost;type:decimal(18,2)" json:"cost"`
	PurchaseDate *time.Time `gorm:"column:purchase_date;type:date" json:"purchase_date,omitempty"`
	ImageURL     string     `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Status       Status     `gorm:"column:status;type:enum('AVAILABLE','IN_USE','MAINTENANCE','DAMAGED','RETIRED');default:'AVAILABLE'" json:"status"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string { return "assets" }
