package routes

import (
	"terapiku/handlers"
	"terapiku/middleware"
	"terapiku/models"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, sh *handlers.SessionHandler) {
	api := r.Group("/api/booking")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/services", bh.ListServices)
		api.GET("/availability", bh.GetAvailability)

		api.POST("/checkout", bh.StartCheckout)
		api.GET("/checkout/:sessionID", bh.GetCheckout)
		api.POST("/checkout/:sessionID/items", bh.AddCartItem)
		api.PUT("/checkout/:sessionID/items/:key", bh.UpdateCartItem)
		api.DELETE("/checkout/:sessionID/items/:key", bh.RemoveCartItem)
		api.DELETE("/checkout/:sessionID/items", bh.ClearCart)
		api.POST("/checkout/:sessionID/confirm", bh.ConfirmCheckout)

		api.GET("/sessions", sh.ListSessionsByDate)
		api.GET("/sessions/:sessionID", sh.GetSession)

		// Status transitions are restricted to clinic staff.
		api.PATCH("/sessions/:sessionID/status",
			middleware.RequireRole(models.RoleAdmin, models.RoleStaff, models.RoleTherapist),
			sh.UpdateSessionStatus)
	}
}
