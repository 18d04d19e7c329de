package handlers

import (
	"errors"
	"net/http"

	"fritidsbo/models"
	"fritidsbo/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateReservationHandler handles POST /api/bokningar.
func (h *BookingHandler) CreateReservationHandler(c *gin.Context) {
	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltig begäran: " + err.Error()})
		return
	}

	res, err := h.Service.Reserve(c.Request.Context(), input)
	if err != nil {
		h.rejectReservation(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *BookingHandler) rejectReservation(c *gin.Context, err error) {
	var (
		valErr     *booking.ValidationError
		rangeErr   *booking.InvalidRangeError
		unavailErr *booking.UnavailableError
		storErr    *booking.StorageError
	)
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Alla obligatoriska fält måste fyllas i",
			"falt":  valErr.Field,
		})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": rangeErr.Error()})
	case errors.As(err, &unavailErr):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Valda datum är inte tillgängliga",
			"availability": models.AvailabilityResponse{
				Available: false,
				Message:   "Datumen är redan bokade",
				Konflikt:  &unavailErr.Konflikt,
			},
		})
	case errors.As(err, &storErr):
		h.Logger.Error("reservation write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid skapande av bokning"})
	default:
		h.Logger.Error("unexpected reservation failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid skapande av bokning"})
	}
}

// CheckAvailabilityHandler handles POST /api/bokningar/check-tillganglighet.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltig begäran: " + err.Error()})
		return
	}

	resp, err := h.Service.CheckDates(c.Request.Context(), req.FastighetID, req.StartDatum, req.SlutDatum)
	if err != nil {
		var valErr *booking.ValidationError
		var rangeErr *booking.InvalidRangeError
		if errors.As(err, &valErr) || errors.As(err, &rangeErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Alla fält måste fyllas i korrekt", "details": err.Error()})
			return
		}
		h.Logger.Error("availability check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid kontroll av tillgänglighet"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListForPropertyHandler handles GET /api/bokningar/fastighet/:fastighetId.
// It never fails on storage errors: a missing or broken backend yields an
// empty array so the booking calendar keeps working.
func (h *BookingHandler) ListForPropertyHandler(c *gin.Context) {
	fastighetID := c.Param("fastighetId")
	reservations, err := h.Service.ListForProperty(c.Request.Context(), fastighetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "FastighetID måste anges"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// ListAllHandler handles GET /api/bokningar (admin overview).
func (h *BookingHandler) ListAllHandler(c *gin.Context) {
	reservations, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid hämtning av bokningar"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateStatusHandler handles PUT /api/bokningar/:id (confirm/cancel).
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltig begäran: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		var valErr *booking.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error()})
			return
		}
		h.Logger.Error("failed to update reservation", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid uppdatering av bokning"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
