package usecase

import (
	"context"
	"sync"
	"time"

	"roombook/internal/domain/recurrence"
	"roombook/internal/domain/schedule"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RecurrenceUseCase interface {
	// ValidateBatch expands the base slots per the recurrence type and
	// checks every candidate against existing bookings. Conflicts are a
	// normal outcome reported in the verdict, not an error; only lookup
	// failures surface as errors.
	ValidateBatch(ctx context.Context, roomID uuid.UUID, slots []recurrence.CandidateSlot, typ recurrence.Type, until time.Time) (*readmodel.RecurrenceVerdictRM, error)
}

type recurrenceUseCaseImpl struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
}

func NewRecurrenceUseCase(roomRepo RoomRepository, bookingRepo BookingRepository) RecurrenceUseCase {
	return &recurrenceUseCaseImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

func (u *recurrenceUseCaseImpl) ValidateBatch(
	ctx context.Context,
	roomID uuid.UUID,
	slots []recurrence.CandidateSlot,
	typ recurrence.Type,
	until time.Time,
) (*readmodel.RecurrenceVerdictRM, error) {
	for _, s := range slots {
		if !s.Start.Before(s.End) {
			return nil, ErrInvalidCandidate
		}
	}

	if _, err := u.roomRepo.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	candidates := recurrence.Expand(slots, typ, until)

	// One verdict per candidate, no short-circuit on the first conflict.
	// Results are keyed by candidate index, so completion order of the
	// lookups does not matter.
	type result struct {
		conflict bool
		err      error
	}
	results := make([]result, len(candidates))

	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conflict, err := u.hasConflict(ctx, roomID, candidates[i])
			results[i] = result{conflict: conflict, err: err}
		}(i)
	}
	wg.Wait()

	verdict := &readmodel.RecurrenceVerdictRM{}
	for i, c := range candidates {
		if results[i].err != nil {
			// The verdict gates a submission; a failed lookup must not
			// pass as "no conflict".
			return nil, errs.Mark(results[i].err, ErrDatabaseOperationFailed)
		}
		if results[i].conflict {
			verdict.Conflicts = append(verdict.Conflicts, c)
		} else {
			verdict.ValidSlots = append(verdict.ValidSlots, c)
		}
	}
	return verdict, nil
}

// hasConflict queries bookings for every calendar day the slot touches; a
// slot may span midnight. A day beginning at the slot's exact end instant
// is not touched.
func (u *recurrenceUseCaseImpl) hasConflict(ctx context.Context, roomID uuid.UUID, slot recurrence.CandidateSlot) (bool, error) {
	slotIv, err := schedule.NewInterval(slot.Start, slot.End)
	if err != nil {
		return false, err
	}

	start := slot.Start
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for ; day.Before(slot.End); day = day.AddDate(0, 0, 1) {
		rms, err := u.bookingRepo.FindBlockingByRoomAndDate(ctx, roomID, day)
		if err != nil {
			return false, err
		}
		bookings, err := toDomainBookings(rms)
		if err != nil {
			return false, err
		}
		for _, b := range bookings {
			if b.Blocks() && b.Interval().Overlaps(slotIv) {
				return true, nil
			}
		}
	}
	return false, nil
}
