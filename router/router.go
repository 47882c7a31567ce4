package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/restaurant-system/controllers"
	"github.com/yeremiapane/restaurant-system/health"
	"github.com/yeremiapane/restaurant-system/kds"
	"github.com/yeremiapane/restaurant-system/metrics"
	"github.com/yeremiapane/restaurant-system/middlewares"
	"github.com/yeremiapane/restaurant-system/services"
)

// Dependencies wires the router. Service is required; the rest may be nil.
type Dependencies struct {
	Service     *services.RestaurantService
	Hub         *kds.Hub
	Metrics     *metrics.RestaurantMetrics
	Health      *health.Handler
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
	RateLimiter *middlewares.RateLimiter
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware(deps.Metrics))

	// ----------------------------------------------------------------
	//                      OPERATIONAL ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/livez", gin.WrapF(health.LivenessHandler))
	if deps.Health != nil {
		r.GET("/healthz", gin.WrapH(deps.Health))
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// ----------------------------------------------------------------
	//                      RESTAURANT ROUTES
	// ----------------------------------------------------------------
	homeCtrl := controllers.NewHomeController(deps.Service)
	tableCtrl := controllers.NewTableController(deps.Service)
	menuCtrl := controllers.NewMenuController(deps.Service)
	orderCtrl := controllers.NewOrderController(deps.Service)
	reportCtrl := controllers.NewReportController(deps.Service)

	api := r.Group("/")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.RateLimit())
	}
	{
		api.GET("/", homeCtrl.Overview)

		api.GET("/tables", tableCtrl.GetAllTables)
		api.GET("/tables/available", tableCtrl.GetAvailableTables)
		api.GET("/tables/reserved", tableCtrl.GetReservedTables)
		api.POST("/tables/:table_id/release", tableCtrl.ReleaseTable)

		api.POST("/reservations", tableCtrl.ReserveTable)
		api.GET("/reservations", tableCtrl.GetReservations)

		api.GET("/menu", menuCtrl.GetAllMenu)
		api.GET("/menu/in-stock", menuCtrl.GetInStockMenu)

		api.POST("/orders", orderCtrl.PlaceOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)

		api.GET("/reports/sales", reportCtrl.SalesReport)
	}

	// live board for floor and kitchen screens
	if deps.Hub != nil {
		liveCtrl := controllers.NewLiveController(deps.Hub, middlewares.OriginChecker(deps.CORSOrigins))
		r.GET("/ws", liveCtrl.Stream)
	}

	return r
}
