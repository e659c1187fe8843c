package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves availability and booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// GetAvailable handles GET /available?date=D.
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	services, err := h.Service.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, "availability", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateBooking handles POST /booking. A duplicate is reported in the body
// with success=false, not as an error status.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		respondBindError(c, "create booking", err)
		return
	}
	result, err := h.Service.Admit(c.Request.Context(), candidate)
	if err != nil {
		respondError(c, "create booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBookings handles GET /booking?patient=E for the verified patient E.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListForPatient(c.Request.Context(), middleware.Email(c), c.Query("patient"))
	if err != nil {
		respondError(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}
