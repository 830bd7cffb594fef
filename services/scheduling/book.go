package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "slotbook/database/repository/booking"
	"slotbook/models"
)

// Book runs the booking state machine: validate the request, compute the
// absolute slot interval, check for conflicts and persist the record.
func (s *DefaultSchedulingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	day, err := time.ParseInLocation(dateLayout, req.Date, s.Zone)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil, ErrWeekend
	}

	tod, err := time.Parse(timeLayout, req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if tod.Hour() < openHour || tod.Hour() >= closeHour {
		return nil, ErrOutsideHours
	}
	if tod.Minute()%slotMinutes != 0 {
		// Availability only ever offers grid-aligned starts; reject the rest.
		return nil, ErrOffGrid
	}

	startLocal := day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
	startUTC := startLocal.UTC()
	endUTC := startUTC.Add(slotMinutes * time.Minute)

	existing, err := s.Repo.FindOverlapping(ctx, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("checking booking conflicts: %w", err)
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Notes:          req.Notes,
		DateLocal:      req.Date,
		StartTimeLocal: req.Time,
		StartUTC:       startUTC.Format(time.RFC3339),
		EndUTC:         endUTC.Format(time.RFC3339),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Insert(ctx, booking); err != nil {
		// The unique index is the serialization point: a concurrent request
		// that slipped past the pre-check surfaces here as a duplicate.
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("persisting booking: %w", err)
	}

	s.invalidateAvailability(ctx, req.Date)
	s.logger().Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	return &models.BookingResponse{
		Status:   "confirmed",
		Date:     req.Date,
		Time:     req.Time,
		Timezone: s.Label,
	}, nil
}
