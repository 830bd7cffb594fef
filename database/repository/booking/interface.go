package bookingRepo

import (
	"context"
	"errors"
	"time"

	"slotbook/models"
)

// ErrDuplicateSlot is returned by Insert when the store's uniqueness
// constraint on the slot start rejects the write. It is the authoritative
// conflict signal: two concurrent requests can both pass the overlap
// pre-check, but only one insert survives the unique index.
var ErrDuplicateSlot = errors.New("a booking already exists for this slot")

// BookingRepository defines the data access methods used by the scheduling service.
type BookingRepository interface {
	// FindInWindow returns all bookings whose absolute start falls within
	// [startUTC, endUTC).
	FindInWindow(ctx context.Context, startUTC, endUTC time.Time) ([]models.Booking, error)
	// FindOverlapping returns one booking whose [start, end) interval overlaps
	// [startUTC, endUTC), or nil if none exists.
	FindOverlapping(ctx context.Context, startUTC, endUTC time.Time) (*models.Booking, error)
	// Insert persists a new booking record.
	Insert(ctx context.Context, booking *models.Booking) error
}
