package handlers

import (
	"errors"
	"net/http"

	catalogRepo "terapiku/database/repository/catalog"
	"terapiku/models"
	"terapiku/services/booking"
	"terapiku/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the checkout, availability and session endpoints.
type BookingHandler struct {
	Checkout booking.CheckoutService
	Checker  booking.AvailabilityChecker
	Catalog  catalogRepo.CatalogRepository
	Logger   *zap.Logger
}

func NewBookingHandler(checkout booking.CheckoutService, checker booking.AvailabilityChecker, catalog catalogRepo.CatalogRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Checkout: checkout,
		Checker:  checker,
		Catalog:  catalog,
		Logger:   logger,
	}
}

// StartCheckout opens a new checkout session for a patient/therapist pair.
func (h *BookingHandler) StartCheckout(c *gin.Context) {
	var input struct {
		PatientID     string `json:"patientId" binding:"required"`
		PatientName   string `json:"patientName" binding:"required"`
		TherapistID   string `json:"therapistId" binding:"required"`
		TherapistName string `json:"therapistName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Checkout.Start(c.Request.Context(),
		models.PersonRef{ID: input.PatientID, Name: input.PatientName},
		models.PersonRef{ID: input.TherapistID, Name: input.TherapistName},
	)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start checkout session", err.Error())
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(session))
}

// GetCheckout returns the current cart state of a checkout session.
func (h *BookingHandler) GetCheckout(c *gin.Context) {
	session, err := h.Checkout.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "checkout session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(session))
}

// AddCartItem adds a priced line to the session's cart.
func (h *BookingHandler) AddCartItem(c *gin.Context) {
	var input struct {
		ServiceID    string                   `json:"serviceId" binding:"required"`
		IsPackage    bool                     `json:"isPackage"`
		Appointments []models.AppointmentSlot `json:"appointments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Checkout.AddItem(c.Request.Context(), c.Param("sessionID"), input.ServiceID, input.IsPackage, input.Appointments)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add item to cart", err.Error())
		return
	}
	h.Logger.Info("cart item added",
		zap.String("sessionId", session.SessionID),
		zap.String("serviceId", input.ServiceID),
		zap.Bool("isPackage", input.IsPackage))
	c.JSON(http.StatusOK, checkoutResponse(session))
}

// UpdateCartItem replaces a line's quantity; zero or less removes the line.
func (h *BookingHandler) UpdateCartItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Checkout.UpdateQuantity(c.Request.Context(), c.Param("sessionID"), c.Param("key"), input.Quantity)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart item", err.Error())
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(session))
}

// RemoveCartItem drops one line from the cart.
func (h *BookingHandler) RemoveCartItem(c *gin.Context) {
	session, err := h.Checkout.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("key"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove cart item", err.Error())
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(session))
}

// ClearCart empties the session's cart.
func (h *BookingHandler) ClearCart(c *gin.Context) {
	session, err := h.Checkout.Clear(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(session))
}

// ConfirmCheckout commits the cart's scheduled lines into therapy sessions.
func (h *BookingHandler) ConfirmCheckout(c *gin.Context) {
	var input struct {
		TransactionID string `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessions, err := h.Checkout.Confirm(c.Request.Context(), c.Param("sessionID"), input.TransactionID)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "slot already booked",
				"therapist": conflict.TherapistName,
				"date":      conflict.Date,
				"time":      conflict.Time,
				"committed": sessions,
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		return
	}

	h.Logger.Info("checkout confirmed",
		zap.String("sessionId", c.Param("sessionID")),
		zap.Int("sessions", len(sessions)))
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetAvailability returns the bookable slots for a therapist on a date.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	therapistID := c.Query("therapistId")
	date := c.Query("date")
	if therapistID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "therapistId and date query parameters are required")
		return
	}

	slots, err := h.Checker.GetAvailableSlots(c.Request.Context(), therapistID, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"therapistId": therapistID,
		"date":        date,
		"slots":       slots,
	})
}

// ListServices returns the purchasable catalog.
func (h *BookingHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func checkoutResponse(session *models.CheckoutSession) gin.H {
	return gin.H{
		"session": session,
		"total":   booking.CartTotal(session.Cart),
	}
}
