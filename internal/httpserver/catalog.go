package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tienda/internal/domain"
	catalogsvc "tienda/internal/service/catalog"
)

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents" binding:"gte=0"`
	Stock       int    `json:"stock" binding:"gte=0"`
	SellerID    *int64 `json:"sellerId"`
}

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, err := svc.Create(c.Request.Context(), catalogsvc.CreateInput{
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Stock:       req.Stock,
			SellerID:    req.SellerID,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, err := svc.Update(c.Request.Context(), id, catalogsvc.UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Stock:       req.Stock,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// pathID parses an integer path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
