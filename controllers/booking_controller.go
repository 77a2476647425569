// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	PropertyID  uint   `json:"property_id" binding:"required"`
	GuestID     uint   `json:"guest_id" binding:"required"`
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	GuestsCount int    `json:"guests_count" binding:"required,min=1"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed rejected"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles POST /api/bookings. Date parsing and shape checks
// happen here; the admission gates run inside the service transaction.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in format, expected YYYY-MM-DD")
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out format, expected YYYY-MM-DD")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
		return
	}

	booking, err := bc.BookingSvc.CreateBooking(req.GuestID, req.PropertyID, checkIn, checkOut, req.GuestsCount)
	if err != nil {
		var ruleErr *services.RuleViolation
		switch {
		case errors.As(err, &ruleErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error": gin.H{
					"code":    ruleErr.Code,
					"message": ruleErr.Message,
				},
			})
		case errors.Is(err, services.ErrPropertyNotFound), errors.Is(err, services.ErrGuestNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrPropertyInactive):
			utils.JSONError(c, http.StatusUnprocessableEntity, "property is not accepting bookings")
		default:
			log.Printf("❌ CreateBooking failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /api/bookings with optional property_id, guest_id
// and status query filters.
func (bc *BookingController) GetBookings(c *gin.Context) {
	var filter services.BookingFilter
	if v := c.Query("property_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid property_id")
			return
		}
		filter.PropertyID = uint(id)
	}
	if v := c.Query("guest_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid guest_id")
			return
		}
		filter.GuestID = uint(id)
	}
	filter.Status = c.Query("status")

	list, err := bc.BookingSvc.GetAllWithRelations(filter)
	if err != nil {
		log.Printf("❌ GetBookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.BookingSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		log.Printf("❌ GetBookingDetails failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status. Illegal
// lifecycle moves come back as 422.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	booking, err := bc.BookingSvc.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusUnprocessableEntity,
				"booking cannot move to status '"+req.Status+"' from its current status")
		default:
			log.Printf("❌ UpdateBookingStatus failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking status")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := bc.BookingSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		log.Printf("❌ DeleteBooking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetPropertyBookings handles GET /api/properties/:id/bookings, the active
// bookings used by availability calendars.
func (bc *BookingController) GetPropertyBookings(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	list, err := bc.BookingSvc.FindActiveByProperty(id)
	if err != nil {
		log.Printf("❌ GetPropertyBookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings")
		return
	}
	if list == nil {
		list = []models.Booking{}
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
