package http

import (
	"net/http"
	"time"

	"assettrack-backend/internal/usecase/asset"

	"github.com/labstack/echo/v4"
)

type AssetHandler struct{ uc *asset.Usecase }

func NewAssetHandler(uc *asset.Usecase) *AssetHandler { return &AssetHandler{uc: uc} }

type createAssetReq struct {
	Name         string  `json:"name"          validate:"required,min=2,max=100"`
	SerialNumber string  `json:"serial_number" validate:"required,serial"`
	Category     string  `json:"category"      validate:"omitempty,max=100"`
	Cost         float64 `json:"cost"          validate:"required,gt=0"`
	// Accept canonical date `YYYY-MM-DD`
	PurchaseDate string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	ImageURL     string `json:"image_url"     validate:"omitempty,url"`
	CreatedBy    string `json:"created_by"    validate:"required,hex32"`
}

func (h *AssetHandler) Create(c echo.Context) error {
	var req createAssetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := asset.CreateAssetInput{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Category:     req.Category,
		Cost:         req.Cost,
		ImageURL:     req.ImageURL,
		CreatedBy:    req.CreatedBy,
	}
	if req.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid purchase_date"})
		}
		in.PurchaseDate = &d
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AssetHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("asset_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AssetHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type setStatusReq struct {
	Status  string `json:"status"   validate:"required,oneof=AVAILABLE IN_USE MAINTENANCE DAMAGED RETIRED"`
	ActorID string `json:"actor_id" validate:"required,hex32"`
}

func (h *AssetHandler) SetStatus(c echo.Context) error {
	assetID := c.Param("asset_id")
	if assetID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing asset_id path param"})
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SetStatus(c.Request().Context(), asset.SetStatusInput{
		AssetID: assetID,
		Status:  req.Status,
		ActorID: req.ActorID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
