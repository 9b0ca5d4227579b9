package api

import (
	"errors"
	"net/http"

	"roombook/internal/domain/recurrence"
	reqdto "roombook/internal/handler/dto/request"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecurrenceHandler struct {
	recurrenceUseCase usecase.RecurrenceUseCase
}

func NewRecurrenceHandler(recurrenceUseCase usecase.RecurrenceUseCase) *RecurrenceHandler {
	return &RecurrenceHandler{
		recurrenceUseCase: recurrenceUseCase,
	}
}

// @Summary Validate recurrence
// @Description Expand the base slots per the recurrence rule and partition candidates by booking conflict
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.ValidateRecurrenceRequest true "Base slots and recurrence rule"
// @Success 200 {object} resdto.RecurrenceVerdictResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/recurrence/validation [post]
func (h *RecurrenceHandler) ValidateRecurrence(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var req reqdto.ValidateRecurrenceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	typ, err := recurrence.ParseType(req.Type)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown recurrence type", nil)
		return
	}

	slots := make([]recurrence.CandidateSlot, len(req.Slots))
	for i, s := range req.Slots {
		slots[i] = recurrence.CandidateSlot{Start: s.StartTime, End: s.EndTime}
	}

	verdictRM, err := h.recurrenceUseCase.ValidateBatch(c.Request.Context(), roomID, slots, typ, req.Until)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrInvalidCandidate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot start must be before its end", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecurrenceVerdictRM(verdictRM))
}
