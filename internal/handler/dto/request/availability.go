package request

import "time"

type SlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ValidateRecurrenceRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,min=1,dive"`
	Type  string        `json:"type" binding:"required,oneof=none weekly"`
	Until time.Time     `json:"until" binding:"required"`
}
