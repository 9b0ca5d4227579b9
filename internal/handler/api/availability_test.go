//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"roombook/internal/domain/availability"
	"roombook/internal/domain/recurrence"
	"roombook/internal/handler/api"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/usecase"
	"roombook/internal/usecase/readmodel"
	"roombook/tests/common/httptest"
	usecasemock "roombook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockAvail      *usecasemock.MockAvailabilityUseCase
	mockRecurrence *usecasemock.MockRecurrenceUseCase
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvail = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.mockRecurrence = usecasemock.NewMockRecurrenceUseCase(s.mockCtrl)

	availHandler := api.NewAvailabilityHandler(s.mockAvail, time.UTC)
	recurrenceHandler := api.NewRecurrenceHandler(s.mockRecurrence)

	s.router.GET("/rooms/:id/slot-options", availHandler.GetSlotOptions)
	s.router.GET("/rooms/:id/timeline", availHandler.GetTimeline)
	s.router.POST("/rooms/:id/recurrence/validation", recurrenceHandler.ValidateRecurrence)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestGetSlotOptions
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetSlotOptions() {
	roomID := uuid.New()
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	url := "/rooms/" + roomID.String() + "/slot-options?date=2026-09-01"

	optionsRM := &readmodel.SlotOptionsRM{
		Date:        day,
		WindowStart: day.Add(8 * time.Hour),
		WindowEnd:   day.Add(56 * time.Hour),
		StartOptions: []availability.Option{
			{PeriodIndex: 0, Time: day.Add(9 * time.Hour), Disabled: false},
			{PeriodIndex: 1, Time: day.Add(13 * time.Hour), Disabled: true},
		},
		EndOptions: []availability.Option{
			{PeriodIndex: 0, Time: day.Add(12 * time.Hour), Disabled: false},
			{PeriodIndex: 1, Time: day.Add(17 * time.Hour), Disabled: true},
		},
	}

	s.Run("success: returns 200 OK with both option lists", func() {
		s.mockAvail.EXPECT().GetSlotOptions(gomock.Any(), roomID, day, nil, nil).
			Return(optionsRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.SlotOptionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-01", response.Date)
		s.Len(response.StartOptions, 2)
		s.Len(response.EndOptions, 2)
		s.False(response.StartOptions[0].Disabled)
		s.True(response.StartOptions[1].Disabled)
	})

	s.Run("success: forwards chosen instants", func() {
		chosenEnd := day.Add(17 * time.Hour)
		s.mockAvail.EXPECT().GetSlotOptions(gomock.Any(), roomID, day, nil, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ time.Time, _ *time.Time, end *time.Time) (*readmodel.SlotOptionsRM, error) {
				s.Require().NotNil(end)
				s.True(end.Equal(chosenEnd))
				return optionsRM, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"&end_time=2026-09-01T17%3A00%3A00Z", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid room UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/invalid-uuid/slot-options?date=2026-09-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 400 Bad Request for missing date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String()+"/slot-options", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or missing date")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				usecaseError:   usecase.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "unknown option",
				usecaseError:   usecase.ErrUnknownOption,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "no period boundary",
			},
			{
				name:           "broken period configuration",
				usecaseError:   usecase.ErrConfigurationInvalid,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Period configuration invalid",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvail.EXPECT().GetSlotOptions(gomock.Any(), roomID, day, nil, nil).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetTimeline
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetTimeline() {
	roomID := uuid.New()
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	url := "/rooms/" + roomID.String() + "/timeline?date=2026-09-01"

	s.Run("success: empty day renders without axis", func() {
		s.mockAvail.EXPECT().GetTimeline(gomock.Any(), roomID, day).
			Return(&readmodel.TimelineRM{Date: day, Empty: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.TimelineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Empty)
		s.Nil(response.AxisStart)
		s.Empty(response.Bands)
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockAvail.EXPECT().GetTimeline(gomock.Any(), roomID, day).
			Return(nil, usecase.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestValidateRecurrence
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestValidateRecurrence() {
	roomID := uuid.New()
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	url := "/rooms/" + roomID.String() + "/recurrence/validation"

	reqBody := map[string]any{
		"slots": []map[string]any{
			{"start_time": "2026-09-01T09:00:00Z", "end_time": "2026-09-01T10:00:00Z"},
		},
		"type":  "weekly",
		"until": "2026-09-15T00:00:00Z",
	}

	s.Run("success: returns 200 OK with verdict partition", func() {
		verdict := &readmodel.RecurrenceVerdictRM{
			ValidSlots: []recurrence.CandidateSlot{
				{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
			},
			Conflicts: []recurrence.CandidateSlot{
				{Start: day.AddDate(0, 0, 7).Add(9 * time.Hour), End: day.AddDate(0, 0, 7).Add(10 * time.Hour)},
			},
		}
		s.mockRecurrence.EXPECT().
			ValidateBatch(gomock.Any(), roomID, gomock.Any(), recurrence.TypeWeekly, gomock.Any()).
			Return(verdict, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.RecurrenceVerdictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.ValidSlots, 1)
		s.Len(response.Conflicts, 1)
	})

	s.Run("error: 400 Bad Request on empty slot list", func() {
		body := map[string]any{
			"slots": []map[string]any{},
			"type":  "none",
			"until": "2026-09-15T00:00:00Z",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request on unknown recurrence type", func() {
		body := map[string]any{
			"slots": []map[string]any{
				{"start_time": "2026-09-01T09:00:00Z", "end_time": "2026-09-01T10:00:00Z"},
			},
			"type":  "daily",
			"until": "2026-09-15T00:00:00Z",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				usecaseError:   usecase.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "invalid candidate",
				usecaseError:   usecase.ErrInvalidCandidate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "before its end",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRecurrence.EXPECT().
					ValidateBatch(gomock.Any(), roomID, gomock.Any(), recurrence.TypeWeekly, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
