package asset

import (
	"time"
)

type CreateAssetInput struct {
	Name         string     `json:"name"`
	SerialNumber string     `json:"serial_number"`
	Category     string     `json:"category"`
	Cost         float64    `json:"cost"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	CreatedBy    string     `json:"created_by"`
}

type SetStatusInput struct {
	AssetID string
	Status  string
	ActorID string
}

type AssetDTO struct {
	AssetID      string     `json:"asset_id"`
	Name         string     `json:"name"`
	SerialNumber string     `json:"serial_number"`
	Category     string     `json:"category,omitempty"`
	Cost         float64    `json:"cost"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
