package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotbook/models"
	"slotbook/services/scheduling"
	"slotbook/utils"
)

// SchedulingHandler exposes the availability and booking endpoints.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Logger: logger}
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD.
func (h *SchedulingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date is required (YYYY-MM-DD)")
		return
	}

	resp, err := h.Service.Availability(c.Request.Context(), date)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /api/book.
func (h *SchedulingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// renderServiceError translates scheduling errors into HTTP responses.
// Conflicts are distinguished from input errors so clients can offer
// "pick another slot".
func (h *SchedulingHandler) renderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "slot unavailable", err.Error())
	case scheduling.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	default:
		h.Logger.Error("scheduling request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "the booking store is unavailable, please try again later")
	}
}
