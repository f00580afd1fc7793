package routes

import (
	"time"

	"terapiku/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, sessionHandler *handlers.SessionHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bookingHandler, sessionHandler)
}
