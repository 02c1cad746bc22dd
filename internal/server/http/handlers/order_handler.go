package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bnplmart/internal/domain/model"
	"github.com/polkiloo/bnplmart/internal/server/http/dto"
)

// OrderHandler manages order placement.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/users/:id/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), c.Param("id"), req.ProductID, req.Quantity, model.PaymentMode(req.PaymentMode))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              order.ID,
		ProductID:       order.ProductID,
		Quantity:        order.Quantity,
		TotalAmount:     order.TotalAmount,
		PaymentMode:     string(order.PaymentMode),
		Status:          string(order.Status),
		OrderDate:       order.OrderDate,
		DueDate:         order.DueDate,
		AmountPaid:      order.AmountPaid,
		RemainingAmount: order.RemainingAmount,
	}
}
