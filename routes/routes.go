package routes

import (
	"net/http"
	"time"

	"salonify/handlers"
	"salonify/middleware"
	"salonify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the scheduling engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/slots", hb.Booking.GetAvailableSlots)
		bookingGroup.GET("/price", hb.Booking.CalculatePrice)
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.POST("/reschedule/:id", hb.Booking.Reschedule)
		bookingGroup.GET("/:id/can-cancel", hb.Booking.CanCancel)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBooking)
	}
}

// RegisterCalendarRoutes sets up the staff calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	calendarGroup := r.Group("/api/calendar")
	{
		calendarGroup.GET("/day", hb.Calendar.ListDay)
		calendarGroup.PUT("/appointments/:id/move", hb.Calendar.Move)
		calendarGroup.PUT("/appointments/:id/resize", hb.Calendar.Resize)
		calendarGroup.PUT("/appointments/:id/confirm", hb.Calendar.Confirm)
		calendarGroup.PUT("/appointments/:id/complete", hb.Calendar.Complete)
		calendarGroup.POST("/blocks", hb.Calendar.CreateBlock)
		calendarGroup.DELETE("/blocks/:id", hb.Calendar.ReleaseBlock)
	}
}

// RegisterCatalogRoutes sets up the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	catalogGroup := r.Group("/api/catalog")
	{
		catalogGroup.GET("/services", hb.Catalog.ListServices)
		catalogGroup.GET("/services/:id", hb.Catalog.GetService)
		catalogGroup.GET("/professionals", hb.Catalog.ListProfessionals)
		catalogGroup.GET("/professionals/:id", hb.Catalog.GetProfessional)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
