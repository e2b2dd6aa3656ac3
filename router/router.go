package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-storefront/checkout"
	"github.com/yeremiapane/restaurant-storefront/client"
	"github.com/yeremiapane/restaurant-storefront/controllers"
	"github.com/yeremiapane/restaurant-storefront/middlewares"
	"github.com/yeremiapane/restaurant-storefront/session"
	"github.com/yeremiapane/restaurant-storefront/tracker"
)

// Deps is everything the HTTP surface needs, wired in main.
type Deps struct {
	Orders      *client.OrderServiceClient
	Sessions    *session.Manager
	Trackers    *tracker.Service
	WatchWindow time.Duration
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())
	r.Use(middlewares.SessionMiddleware(deps.Sessions))

	menuCtrl := controllers.NewMenuController(deps.Orders)
	cartCtrl := controllers.NewCartController(deps.Orders)
	checkoutCtrl := controllers.NewCheckoutController(
		checkout.NewSubmitter(deps.Orders))
	orderCtrl := controllers.NewOrderController(deps.Orders, deps.Trackers, deps.WatchWindow)

	api := r.Group("/api")
	{
		api.GET("/menu-items", menuCtrl.GetMenuItems)
		api.GET("/categories", menuCtrl.GetCategories)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.ClearCart)

		api.POST("/checkout", middlewares.NewCheckoutRateLimiter(), checkoutCtrl.Checkout)

		api.GET("/orders/:order_number", orderCtrl.GetOrder)
		api.GET("/orders/:order_number/watch", orderCtrl.WatchOrder)
	}

	return r
}
