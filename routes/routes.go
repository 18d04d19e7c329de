package routes

import (
	"net/http"
	"time"

	"fritidsbo/handlers"
	"fritidsbo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBokningRoutes registers the booking endpoints.
func RegisterBokningRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bokningar")
	{
		api.POST("", bh.CreateReservationHandler)
		api.POST("/check-tillganglighet", bh.CheckAvailabilityHandler)
		api.GET("/fastighet/:fastighetId", bh.ListForPropertyHandler)

		// Admin paths.
		api.GET("", bh.ListAllHandler)
		api.PUT("/:id", bh.UpdateStatusHandler)
	}
}

// RegisterFastighetRoutes registers the property catalog endpoints.
func RegisterFastighetRoutes(r *gin.Engine, fh *handlers.FastighetHandler) {
	api := r.Group("/api/fastigheter")
	{
		api.GET("", fh.GetAllHandler)
		api.GET("/:id", fh.GetByIDHandler)
		api.POST("", fh.CreateHandler)
		api.PUT("/:id", fh.UpdateHandler)
		api.DELETE("/:id", fh.DeleteHandler)
	}

	bilder := r.Group("/api/bilder")
	{
		bilder.GET("", fh.ListBilderHandler)
		bilder.POST("", fh.AddBildHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// CORSMiddleware returns the CORS policy for the browser frontend.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes wires every endpoint group.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, fh *handlers.FastighetHandler) {
	RegisterBokningRoutes(r, bh)
	RegisterFastighetRoutes(r, fh)
	RegisterHealthRoute(r)
}
