package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bnplmart/internal/domain/model"
	"github.com/polkiloo/bnplmart/internal/server/http/dto"
	"github.com/polkiloo/bnplmart/internal/server/http/middleware"
)

// UserHandler manages user registration and reports.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.RegisterUser(c.Request.Context(), req.ID, req.Name, req.CreditLimit)
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.facade.IssueToken(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthHeader(c, token)
	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		CreditLimit:     user.CreditLimit,
		AvailableCredit: user.AvailableCredit(),
		Token:           token,
	})
}

// Token handles POST /api/users/:id/token and reissues an access token.
func (h *UserHandler) Token(c *gin.Context) {
	userID := c.Param("id")
	token, err := h.facade.IssueToken(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthHeader(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{ID: userID, Token: token})
}

// Status handles GET /api/users/:id.
func (h *UserHandler) Status(c *gin.Context) {
	status, err := h.facade.UserStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	counts := make(map[string]int, len(status.OrderCounts))
	for s, n := range status.OrderCounts {
		counts[string(s)] = n
	}
	c.JSON(http.StatusOK, dto.UserStatusResponse{
		ID:               status.UserID,
		Name:             status.Name,
		CreditLimit:      status.CreditLimit,
		UsedCredit:       status.UsedCredit,
		AvailableCredit:  status.AvailableCredit,
		IsBlacklisted:    status.IsBlacklisted,
		DefaultCount:     status.DefaultCount,
		TotalPendingDues: status.TotalPendingDues,
		TotalOrders:      status.TotalOrders,
		OrderCounts:      counts,
	})
}

// Orders handles GET /api/users/:id/orders.
func (h *UserHandler) Orders(c *gin.Context) {
	history, err := h.facade.OrderHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(history) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(history))
	for _, entry := range history {
		o := toOrderResponse(entry.Order)
		o.ProductName = entry.ProductName
		o.IsDefaulted = entry.IsDefaulted
		resp = append(resp, o)
	}
	c.JSON(http.StatusOK, resp)
}

// Events handles GET /api/users/:id/events.
func (h *UserHandler) Events(c *gin.Context) {
	events, err := h.facade.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(events) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

func toEventResponse(e model.LedgerEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:         e.ID,
		Kind:       string(e.Kind),
		OrderID:    e.OrderID,
		Amount:     e.Amount,
		Detail:     e.Detail,
		RecordedAt: e.RecordedAt.UTC().Format(time.RFC3339),
	}
}
