package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda/internal/domain"
	buyersvc "tienda/internal/service/buyer"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// unrecognized is treated as a store failure and hidden behind a generic
// message.
func writeError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError
	var limitErr *domain.CartLimitError
	var validationErr domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrBuyerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNoOrderTotal),
		errors.Is(err, buyersvc.ErrInvalidIdentityNumber),
		errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     err.Error(),
			"productId": stockErr.ProductID,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	case errors.As(err, &limitErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     err.Error(),
			"productId": limitErr.ProductID,
			"requested": limitErr.Requested,
			"inCart":    limitErr.InCart,
			"limit":     limitErr.Limit,
		})
	case errors.Is(err, buyersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error accessing the store"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
