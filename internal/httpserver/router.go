package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"tienda/internal/identity"
)

// Deps carries the services the handlers delegate to.
type Deps struct {
	CatalogSvc   catalogService
	CartSvc      cartService
	OrderSvc     orderService
	RecommendSvc recommendService
	BuyerSvc     buyerService
	CartStore    cartStore
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := identity.RegisterValidations(v); err != nil {
			return nil, err
		}
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	router.POST("/products", createProductHandler(deps.CatalogSvc))
	router.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))

	cart := router.Group("/cart", sessionMiddleware())
	cart.GET("", getCartHandler(deps.CartSvc, deps.CartStore))
	cart.POST("/items", addToCartHandler(deps.CartSvc, deps.CartStore))
	cart.DELETE("/items/:productId", removeFromCartHandler(deps.CartSvc, deps.CartStore))
	cart.DELETE("", clearCartHandler(deps.CartStore))

	router.POST("/checkout", sessionMiddleware(), checkoutHandler(deps.OrderSvc, deps.CartStore))

	router.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	router.GET("/orders/:id/items", getOrderItemsHandler(deps.OrderSvc))

	router.POST("/signup", signupHandler(deps.BuyerSvc))
	router.POST("/signup/company", companySignupHandler(deps.BuyerSvc))
	router.POST("/login", loginHandler(deps.BuyerSvc))
	router.GET("/buyers/:id", getBuyerHandler(deps.BuyerSvc))
	router.GET("/buyers/:id/orders", listBuyerOrdersHandler(deps.OrderSvc))
	router.GET("/buyers/:id/recommendations", buyerRecommendationsHandler(deps.RecommendSvc))

	router.GET("/recommendations/top", topSellingHandler(deps.RecommendSvc))

	return router, nil
}
