package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda/internal/domain"
)

type checkoutRequest struct {
	BuyerID int64 `json:"buyerId" binding:"required"`
}

// checkoutHandler turns the session cart into an order. The cart is cleared
// only after the order committed; a failed checkout leaves it intact.
func checkoutHandler(svc orderService, store cartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		ctx := c.Request.Context()
		sid := sessionID(c)
		cart, err := store.Load(ctx, sid)
		if err != nil {
			writeError(c, err)
			return
		}
		order, err := svc.Checkout(ctx, cart.Snapshot(), req.BuyerID)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := store.Clear(ctx, sid); err != nil {
			// The order exists; a stale cart is the lesser failure.
			c.JSON(http.StatusCreated, gin.H{"order": order, "warning": "cart could not be cleared"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func getOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		order, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func getOrderItemsHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		items, err := svc.Items(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []domain.OrderItem{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func listBuyerOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orders, err := svc.ListByBuyer(c.Request.Context(), buyerID)
		if err != nil {
			writeError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
