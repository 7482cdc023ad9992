package http

import (
	"net/http"

	"assettrack-backend/internal/usecase/borrow"

	"github.com/labstack/echo/v4"
)

type BorrowHandler struct{ uc *borrow.Usecase }

func NewBorrowHandler(uc *borrow.Usecase) *BorrowHandler { return &BorrowHandler{uc: uc} }

type submitRequestReq struct {
	AssetID     string `json:"asset_id"     validate:"required,hex32"`
	RequesterID string `json:"requester_id" validate:"required,hex32"`
	Note        string `json:"note"         validate:"omitempty,max=2000"`
}

func (h *BorrowHandler) Submit(c echo.Context) error {
	var req submitRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), borrow.SubmitInput{
		AssetID:     req.AssetID,
		RequesterID: req.RequesterID,
		Note:        req.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type approveReq struct {
	AdminID string `json:"admin_id" validate:"required,hex32"`
}

func (h *BorrowHandler) Approve(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Approve(c.Request().Context(), borrow.ApproveInput{
		RequestID: requestID,
		AdminID:   req.AdminID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type declineReq struct {
	AdminID string `json:"admin_id" validate:"required,hex32"`
	Reason  string `json:"reason"   validate:"omitempty,max=2000"`
}

func (h *BorrowHandler) Decline(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req declineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decline(c.Request().Context(), borrow.DeclineInput{
		RequestID: requestID,
		AdminID:   req.AdminID,
		Reason:    req.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type cancelReq struct {
	RequesterID string `json:"requester_id" validate:"required,hex32"`
}

func (h *BorrowHandler) Cancel(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Cancel(c.Request().Context(), borrow.CancelInput{
		RequestID:   requestID,
		RequesterID: req.RequesterID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowHandler) Complete(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	dto, err := h.uc.Complete(c.Request().Context(), requestID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListPending is the admin approval queue.
func (h *BorrowHandler) ListPending(c echo.Context) error {
	rows, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *BorrowHandler) ListByRequester(c echo.Context) error {
	requesterID := c.Param("requester_id")
	if !reHex32.MatchString(requesterID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid requester_id"})
	}
	rows, err := h.uc.ListByRequester(c.Request().Context(), requesterID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *BorrowHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
