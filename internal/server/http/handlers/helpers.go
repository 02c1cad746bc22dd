package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/bnplmart/internal/domain/errors"
	"github.com/polkiloo/bnplmart/internal/server/http/dto"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrInsufficientStock), errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInsufficientCredit):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrUserBlacklisted):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.Status(status)
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
