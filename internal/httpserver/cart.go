package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

type cartLineResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func getCartHandler(svc cartService, store cartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cart, err := store.Load(ctx, sessionID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		total, err := svc.Total(ctx, cart)
		if err != nil {
			writeError(c, err)
			return
		}
		lines := make([]cartLineResponse, 0, cart.Len())
		for productID, qty := range cart.Snapshot() {
			lines = append(lines, cartLineResponse{ProductID: productID, Quantity: qty})
		}
		c.JSON(http.StatusOK, gin.H{"lines": lines, "totalCents": total})
	}
}

func addToCartHandler(svc cartService, store cartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
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
		qty, err := svc.Add(ctx, cart, req.ProductID, req.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := store.Save(ctx, sid, cart); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"productId": req.ProductID, "quantity": qty})
	}
}

func removeFromCartHandler(svc cartService, store cartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		sid := sessionID(c)
		cart, err := store.Load(ctx, sid)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := svc.Remove(cart, productID); err != nil {
			writeError(c, err)
			return
		}
		if err := store.Save(ctx, sid, cart); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(store cartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(c.Request.Context(), sessionID(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
