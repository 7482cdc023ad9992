package http

import (
	"net/http"
	"strconv"

	"assettrack-backend/internal/domain/notification"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the in-app notification feed; plain reads plus a
// mark-read toggle, no workflow semantics.
type NotificationHandler struct{ repo notification.Repository }

func NewNotificationHandler(repo notification.Repository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) ListByRecipient(c echo.Context) error {
	recipientID := c.Param("user_id")
	if !reHex32.MatchString(recipientID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	rows, err := h.repo.ListByRecipient(c.Request().Context(), recipientID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
	}
	if err := h.repo.MarkRead(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
