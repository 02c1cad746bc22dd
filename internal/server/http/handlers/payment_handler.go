package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bnplmart/internal/server/http/dto"
)

// PaymentHandler manages dues clearing and default settlement.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Pay handles POST /api/users/:id/payments.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ClearDues(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.PaymentResponse{
		Applied:     result.Applied,
		Leftover:    result.Leftover,
		Allocations: make([]dto.AllocationResponse, 0, len(result.Allocations)),
	}
	for _, a := range result.Allocations {
		resp.Allocations = append(resp.Allocations, dto.AllocationResponse{
			OrderID:   a.OrderID,
			Applied:   a.Applied,
			Remaining: a.Remaining,
			Status:    string(a.Status),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// SettleDefaults handles POST /api/users/:id/defaults.
func (h *PaymentHandler) SettleDefaults(c *gin.Context) {
	n, err := h.facade.SettleDefaults(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettleDefaultsResponse{NewlyDefaulted: n})
}
