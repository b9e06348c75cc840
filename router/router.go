package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/config"
	"github.com/savorybites/restaurant-backend/controllers"
	"github.com/savorybites/restaurant-backend/middlewares"
	"github.com/savorybites/restaurant-backend/services"
)

// Deps carries the shared state the handlers close over. Everything is
// constructed once in main.
type Deps struct {
	Cfg      *config.Config
	Catalog  *services.MenuCatalog
	Orders   *services.OrderManager
	Cart     *services.CartService
	Payments *services.PaymentService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// The legacy frontend relies on 405 for wrong-method calls.
	r.HandleMethodNotAllowed = true

	menuCtrl := controllers.NewMenuController(deps.Catalog)
	orderCtrl := controllers.NewOrderController(deps.Catalog, deps.Orders, deps.Cfg)
	cartCtrl := controllers.NewCartController(deps.Cart)
	offerCtrl := controllers.NewOfferController()
	paymentCtrl := controllers.NewPaymentController(deps.Payments)
	configCtrl := controllers.NewConfigController(deps.Cfg)

	// Static frontend
	workDir, _ := os.Getwd()
	publicPath := filepath.Join(workDir, "public")
	r.StaticFile("/", filepath.Join(publicPath, "index.html"))
	r.Static("/public", publicPath)

	api := r.Group("/api")
	{
		// Legacy text endpoints
		api.POST("/claim", middlewares.NewStrictRateLimiter(), offerCtrl.ClaimOffer)
		api.POST("/order", orderCtrl.CreateOrder)
		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart", cartCtrl.UpdateCart)

		// JSON endpoints
		api.GET("/menu", menuCtrl.GetAllMenus)
		api.GET("/menu/:item_id", menuCtrl.GetMenuByID)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		api.GET("/payments", paymentCtrl.GetAllTransactions)
		api.GET("/config", configCtrl.GetConfig)
		api.PATCH("/config/tax-rate", configCtrl.UpdateTaxRate)
	}

	r.NoMethod(func(c *gin.Context) {
		c.Status(http.StatusMethodNotAllowed)
	})

	return r
}
