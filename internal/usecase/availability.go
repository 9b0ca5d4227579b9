package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"roombook/internal/domain/availability"
	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"
	"roombook/internal/domain/timeline"
	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrUnknownOption    = errors.New("chosen time matches no period boundary")
	ErrInvalidCandidate = errors.New("invalid candidate slot")

	// Error markers for categorization
	ErrConfigurationInvalid    = errors.New("period configuration invalid")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	List(ctx context.Context) ([]*readmodel.RoomRM, error)
}

type PeriodRepository interface {
	List(ctx context.Context) ([]*readmodel.PeriodRM, error)
}

type BookingRepository interface {
	// FindBlockingByRoomAndDate returns pending/confirmed bookings whose
	// interval intersects the calendar day, ordered by start time.
	FindBlockingByRoomAndDate(ctx context.Context, roomID uuid.UUID, day time.Time) ([]*readmodel.BookingRM, error)
}

type SettingsRepository interface {
	BookingWindow(ctx context.Context) (time.Duration, error)
	MaxDuration(ctx context.Context) (*time.Duration, error)
}

type SessionRepository interface {
	// FindCurrent returns the session covering now, or nil when bookings
	// are not session-scoped at the moment.
	FindCurrent(ctx context.Context, now time.Time) (*readmodel.SessionRM, error)
}

type AvailabilityUseCase interface {
	GetSlotOptions(ctx context.Context, roomID uuid.UUID, day time.Time, chosenStart, chosenEnd *time.Time) (*readmodel.SlotOptionsRM, error)
	GetTimeline(ctx context.Context, roomID uuid.UUID, day time.Time) (*readmodel.TimelineRM, error)
}

type availabilityUseCaseImpl struct {
	roomRepo     RoomRepository
	periodRepo   PeriodRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	sessionRepo  SessionRepository
	clock        clock.Clock
}

func NewAvailabilityUseCase(
	roomRepo RoomRepository,
	periodRepo PeriodRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	sessionRepo SessionRepository,
	clock clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		roomRepo:     roomRepo,
		periodRepo:   periodRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		sessionRepo:  sessionRepo,
		clock:        clock,
	}
}

func (u *availabilityUseCaseImpl) GetSlotOptions(
	ctx context.Context,
	roomID uuid.UUID,
	day time.Time,
	chosenStart, chosenEnd *time.Time,
) (*readmodel.SlotOptionsRM, error) {
	if err := u.ensureRoomExists(ctx, roomID); err != nil {
		return nil, err
	}

	dated, err := u.materializedPeriods(ctx, day)
	if err != nil {
		return nil, err
	}

	bookings, err := u.blockingBookings(ctx, roomID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	window, err := u.bookingWindow(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	maxDuration, err := u.settingsRepo.MaxDuration(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	filtered := availability.Filter(dated, window, bookings)

	startOpt, err := resolveOption(filtered, chosenStart, boundaryStart)
	if err != nil {
		return nil, err
	}
	endOpt, err := resolveOption(filtered, chosenEnd, boundaryEnd)
	if err != nil {
		return nil, err
	}

	return &readmodel.SlotOptionsRM{
		Date:         day,
		WindowStart:  window.Start,
		WindowEnd:    window.End,
		MaxDuration:  maxDuration,
		StartOptions: availability.StartOptions(filtered, endOpt, maxDuration),
		EndOptions:   availability.EndOptions(filtered, startOpt, maxDuration),
	}, nil
}

func (u *availabilityUseCaseImpl) GetTimeline(
	ctx context.Context,
	roomID uuid.UUID,
	day time.Time,
) (*readmodel.TimelineRM, error) {
	if err := u.ensureRoomExists(ctx, roomID); err != nil {
		return nil, err
	}

	dated, err := u.materializedPeriods(ctx, day)
	if err != nil {
		return nil, err
	}

	bookings, err := u.blockingBookings(ctx, roomID, day)
	if err != nil {
		// The timeline is a non-authoritative preview; render the
		// operating-hours structure without bookings rather than fail.
		slog.Warn("timeline booking lookup failed, rendering without bookings",
			"room_id", roomID, "error", err)
		bookings = nil
	}

	tl, ok := timeline.Layout(dated, bookings)
	return &readmodel.TimelineRM{Date: day, Empty: !ok, Timeline: tl}, nil
}

func (u *availabilityUseCaseImpl) ensureRoomExists(ctx context.Context, roomID uuid.UUID) error {
	if _, err := u.roomRepo.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *availabilityUseCaseImpl) materializedPeriods(ctx context.Context, day time.Time) ([]schedule.DatedPeriod, error) {
	rms, err := u.periodRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	periods := make([]schedule.Period, len(rms))
	for i, rm := range rms {
		p, err := schedule.NewPeriod(rm.ID, rm.Start, rm.End)
		if err != nil {
			return nil, errs.Mark(err, ErrConfigurationInvalid)
		}
		periods[i] = p
	}

	dated, err := schedule.Materialize(periods, day)
	if err != nil {
		return nil, errs.Mark(err, ErrConfigurationInvalid)
	}
	return dated, nil
}

func (u *availabilityUseCaseImpl) blockingBookings(ctx context.Context, roomID uuid.UUID, day time.Time) ([]booking.Booking, error) {
	rms, err := u.bookingRepo.FindBlockingByRoomAndDate(ctx, roomID, day)
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rms)
}

// bookingWindow prefers the current session's range; outside any session
// the window runs from now to now plus the configured offset.
func (u *availabilityUseCaseImpl) bookingWindow(ctx context.Context) (availability.TimeWindow, error) {
	now := u.clock.Now()

	session, err := u.sessionRepo.FindCurrent(ctx, now)
	if err != nil {
		return availability.TimeWindow{}, err
	}
	if session != nil {
		return availability.WindowFromSession(now, session.StartTime, session.EndTime), nil
	}

	offset, err := u.settingsRepo.BookingWindow(ctx)
	if err != nil {
		return availability.TimeWindow{}, err
	}
	return availability.WindowFromOffset(now, offset), nil
}

type boundary int

const (
	boundaryStart boundary = iota
	boundaryEnd
)

// resolveOption maps a chosen instant back onto the period boundary it
// names. The pickers only ever offer period boundaries, so anything else
// is a stale or forged choice.
func resolveOption(periods []schedule.DatedPeriod, chosen *time.Time, b boundary) (*availability.Option, error) {
	if chosen == nil {
		return nil, nil
	}
	for i, p := range periods {
		t := p.Interval.Start()
		if b == boundaryEnd {
			t = p.Interval.End()
		}
		if t.Equal(*chosen) {
			return &availability.Option{PeriodIndex: i, Time: t, Disabled: p.Disabled}, nil
		}
	}
	return nil, ErrUnknownOption
}

func toDomainBookings(rms []*readmodel.BookingRM) ([]booking.Booking, error) {
	bookings := make([]booking.Booking, 0, len(rms))
	for _, rm := range rms {
		b, err := booking.NewBooking(rm.ID, rm.RoomID, rm.StartTime, rm.EndTime, booking.Status(rm.Status))
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", rm.ID)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
