package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/fabien/restaurant-booking-api/internal/handler"
)

// RegisterRoutes registers routes that do not belong to the REST API on
// the provided Echo instance.  Currently it exposes only a health check
// that load balancers and monitoring systems can probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the four resource groups under /api.  Every
// resource follows the same shape: list, fetch, create, full-replace
// update and delete.
func RegisterAPI(e *echo.Echo, rh *handler.RestaurantHandler, th *handler.DiningTableHandler, ch *handler.CustomerHandler, bh *handler.BookingHandler) {
	api := e.Group("/api")

	restaurants := api.Group("/restaurants")
	restaurants.GET("", rh.List)
	restaurants.GET("/:id", rh.Get)
	restaurants.POST("", rh.Create)
	restaurants.PUT("/:id", rh.Update)
	restaurants.DELETE("/:id", rh.Delete)

	tables := api.Group("/tables")
	tables.GET("", th.List)
	tables.GET("/:id", th.Get)
	tables.POST("", th.Create)
	tables.PUT("/:id", th.Update)
	tables.DELETE("/:id", th.Delete)

	customers := api.Group("/customers")
	customers.GET("", ch.List)
	customers.GET("/:id", ch.Get)
	customers.POST("", ch.Create)
	customers.PUT("/:id", ch.Update)
	customers.DELETE("/:id", ch.Delete)

	bookings := api.Group("/bookings")
	bookings.GET("", bh.List)
	bookings.GET("/:id", bh.Get)
	bookings.POST("", bh.Create)
	bookings.PUT("/:id", bh.Update)
	bookings.DELETE("/:id", bh.Delete)
}
