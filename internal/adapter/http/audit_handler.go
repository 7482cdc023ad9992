package http

import (
	"net/http"
	"strconv"

	"assettrack-backend/internal/domain/audit"

	"github.com/labstack/echo/v4"
)

type AuditHandler struct{ repo audit.Repository }

func NewAuditHandler(repo audit.Repository) *AuditHandler { return &AuditHandler{repo: repo} }

// ListRecent returns the newest audit entries; ?limit= caps the page
// (default 100, max 500 enforced by the repository).
func (h *AuditHandler) ListRecent(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = n
	}
	rows, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
