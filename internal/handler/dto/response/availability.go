package response

import (
	"time"

	"roombook/internal/domain/recurrence"
	"roombook/internal/domain/timeline"
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OptionResponse struct {
	PeriodIndex int       `json:"period_index"`
	Time        time.Time `json:"time"`
	Disabled    bool      `json:"disabled"`
}

type SlotOptionsResponse struct {
	Date               string           `json:"date"`
	WindowStart        time.Time        `json:"window_start"`
	WindowEnd          time.Time        `json:"window_end"`
	MaxDurationSeconds *int64           `json:"max_duration_seconds,omitempty"`
	StartOptions       []OptionResponse `json:"start_options"`
	EndOptions         []OptionResponse `json:"end_options"`
}

func FromSlotOptionsRM(rm *readmodel.SlotOptionsRM) *SlotOptionsResponse {
	resp := &SlotOptionsResponse{
		Date:         rm.Date.Format(time.DateOnly),
		WindowStart:  rm.WindowStart,
		WindowEnd:    rm.WindowEnd,
		StartOptions: []OptionResponse{},
		EndOptions:   []OptionResponse{},
	}
	if rm.MaxDuration != nil {
		secs := int64(rm.MaxDuration.Seconds())
		resp.MaxDurationSeconds = &secs
	}
	_ = copier.Copy(&resp.StartOptions, rm.StartOptions)
	_ = copier.Copy(&resp.EndOptions, rm.EndOptions)
	return resp
}

type BandResponse struct {
	Kind      string     `json:"kind"`
	SourceID  *uuid.UUID `json:"source_id,omitempty"`
	Status    string     `json:"status,omitempty"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	OffsetPct float64    `json:"offset_pct"`
	HeightPct float64    `json:"height_pct"`
}

type TimelineResponse struct {
	Date      string         `json:"date"`
	Empty     bool           `json:"empty"`
	AxisStart *time.Time     `json:"axis_start,omitempty"`
	AxisEnd   *time.Time     `json:"axis_end,omitempty"`
	Bands     []BandResponse `json:"bands"`
}

func FromTimelineRM(rm *readmodel.TimelineRM) *TimelineResponse {
	resp := &TimelineResponse{
		Date:  rm.Date.Format(time.DateOnly),
		Empty: rm.Empty,
		Bands: []BandResponse{},
	}
	if rm.Empty {
		return resp
	}

	axisStart, axisEnd := rm.Timeline.AxisStart, rm.Timeline.AxisEnd
	resp.AxisStart = &axisStart
	resp.AxisEnd = &axisEnd
	for _, band := range rm.Timeline.Bands() {
		resp.Bands = append(resp.Bands, fromBand(band))
	}
	return resp
}

func fromBand(b timeline.Band) BandResponse {
	resp := BandResponse{
		Kind:      string(b.Kind),
		Status:    b.Status.String(),
		StartTime: b.Start,
		EndTime:   b.End,
		OffsetPct: b.OffsetPct,
		HeightPct: b.HeightPct,
	}
	if b.Kind != timeline.BandGap {
		id := b.SourceID
		resp.SourceID = &id
	}
	return resp
}

type SlotResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type RecurrenceVerdictResponse struct {
	ValidSlots []SlotResponse `json:"valid_slots"`
	Conflicts  []SlotResponse `json:"conflicts"`
}

func FromRecurrenceVerdictRM(rm *readmodel.RecurrenceVerdictRM) *RecurrenceVerdictResponse {
	return &RecurrenceVerdictResponse{
		ValidSlots: fromSlots(rm.ValidSlots),
		Conflicts:  fromSlots(rm.Conflicts),
	}
}

func fromSlots(slots []recurrence.CandidateSlot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{StartTime: s.Start, EndTime: s.End}
	}
	return out
}
