package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultRecommendationLimit = 5

func topSellingHandler(svc recommendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := queryLimit(c)
		c.JSON(http.StatusOK, gin.H{"products": svc.TopSelling(c.Request.Context(), limit)})
	}
}

func buyerRecommendationsHandler(svc recommendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := pathID(c, "id")
		if !ok {
			return
		}
		limit := queryLimit(c)
		c.JSON(http.StatusOK, gin.H{"products": svc.TopForBuyer(c.Request.Context(), buyerID, limit)})
	}
}

func queryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultRecommendationLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultRecommendationLimit
	}
	return limit
}
