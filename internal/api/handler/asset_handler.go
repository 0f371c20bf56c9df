package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

// AssetHandler handles HTTP requests for asset operations.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

type assetResponse struct {
	Asset *domain.Asset `json:"asset"`
}

type assetListResponse struct {
	Assets []domain.Asset `json:"assets"`
}

// Create handles POST /api/assets.
//
// @Summary      Create an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreateAssetInput  true  "Asset fields"
// @Success      201   {object}  assetResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c echo.Context) error {
	var req ports.CreateAssetInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	asset, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, assetResponse{Asset: asset})
}

// List handles GET /api/assets.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  assetListResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	assets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assetListResponse{Assets: assets})
}

// Get handles GET /api/assets/:id.
//
// @Summary      Get an asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Asset id"
// @Success      200  {object}  assetResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	asset, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assetResponse{Asset: asset})
}

// Update handles PUT /api/assets/:id. All fields are optional.
//
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Asset id"
// @Param        body  body      ports.UpdateAssetInput  true  "Fields to change"
// @Success      200   {object}  assetResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req ports.UpdateAssetInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	asset, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assetResponse{Asset: asset})
}

// Delete handles DELETE /api/assets/:id.
//
// @Summary      Delete an asset
// @Tags         assets
// @Security     BearerAuth
// @Param        id  path  int  true  "Asset id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
