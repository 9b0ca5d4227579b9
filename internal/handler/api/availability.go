package api

import (
	"errors"
	"net/http"
	"time"

	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
	loc                 *time.Location
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
		loc:                 loc,
	}
}

// @Summary Get slot options
// @Description Compute the start/end picker option lists for a room and date
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Param start_time query string false "Already-chosen start instant (RFC 3339)"
// @Param end_time query string false "Already-chosen end instant (RFC 3339)"
// @Success 200 {object} resdto.SlotOptionsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/slot-options [get]
func (h *AvailabilityHandler) GetSlotOptions(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	day, err := h.parseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date", nil)
		return
	}

	chosenStart, err := parseOptionalInstant(c.Query("start_time"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start_time", nil)
		return
	}
	chosenEnd, err := parseOptionalInstant(c.Query("end_time"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end_time", nil)
		return
	}

	optionsRM, err := h.availabilityUseCase.GetSlotOptions(c.Request.Context(), roomID, day, chosenStart, chosenEnd)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrUnknownOption):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Chosen time matches no period boundary", nil)
		case errors.Is(err, usecase.ErrConfigurationInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Period configuration invalid", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotOptionsRM(optionsRM))
}

// @Summary Get timeline
// @Description Render a room's day as proportional period/booking bands
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {object} resdto.TimelineResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/timeline [get]
func (h *AvailabilityHandler) GetTimeline(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	day, err := h.parseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date", nil)
		return
	}

	timelineRM, err := h.availabilityUseCase.GetTimeline(c.Request.Context(), roomID, day)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrConfigurationInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Period configuration invalid", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimelineRM(timelineRM))
}

// parseDate reads a calendar date and anchors it at midnight in the
// configured booking timezone.
func (h *AvailabilityHandler) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.ParseInLocation(time.DateOnly, raw, h.loc)
}

func parseOptionalInstant(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
