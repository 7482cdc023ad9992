package borrow

import (
	"time"

	"assettrack-backend/internal/domain/request"
)

type SubmitInput struct {
	AssetID     string `json:"asset_id"`
	RequesterID string `json:"requester_id"`
	Note        string `json:"note"`
}

type ApproveInput struct {
	RequestID string
	AdminID   string
}

type DeclineInput struct {
	RequestID string
	AdminID   string
	Reason    string
}

type CancelInput struct {
	RequestID   string
	RequesterID string
}

type RequestDTO struct {
	RequestID     string     `json:"request_id"`
	AssetID       string     `json:"asset_id"`
	RequesterID   string     `json:"requester_id"`
	Status        string     `json:"status"`
	Note          string     `json:"note,omitempty"`
	DeclineReason string     `json:"decline_reason,omitempty"`
	ProcessedBy   *string    `json:"processed_by,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

func toDTO(br *request.BorrowRequest) *RequestDTO {
	return &RequestDTO{
		RequestID:     br.RequestID,
		AssetID:       br.AssetID,
		RequesterID:   br.RequesterID,
		Status:        string(br.Status),
		Note:          br.Note,
		DeclineReason: br.DeclineReason,
		ProcessedBy:   br.ProcessedBy,
		RequestedAt:   br.RequestedAt,
		ProcessedAt:   br.ProcessedAt,
	}
}
