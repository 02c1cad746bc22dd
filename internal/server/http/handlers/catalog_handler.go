package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bnplmart/internal/domain/model"
	"github.com/polkiloo/bnplmart/internal/server/http/dto"
)

// CatalogHandler manages product endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Stock handles POST /api/products.
func (h *CatalogHandler) Stock(c *gin.Context) {
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := model.Product{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	}
	item, err := h.facade.Stock(c.Request.Context(), product, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInventoryItemResponse(item))
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.facade.Inventory(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toInventoryItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.facade.InventoryStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInventoryItemResponse(item))
}

func toInventoryItemResponse(item model.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:          item.Product.ID,
		Name:        item.Product.Name,
		Category:    item.Product.Category,
		Price:       item.Product.Price,
		Description: item.Product.Description,
		Quantity:    item.Quantity,
	}
}
