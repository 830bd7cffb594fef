package bookingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"slotbook/models"
)

// MemoryBookingRepo is an in-memory BookingRepository used as a test
// substitute for the Mongo implementation. It mirrors the store semantics
// the service relies on: lexicographic range/overlap filters over the
// RFC3339 instant strings and a uniqueness constraint on start_utc.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryBookingRepo constructs an empty in-memory repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (repo *MemoryBookingRepo) FindInWindow(ctx context.Context, startUTC, endUTC time.Time) ([]models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	start := startUTC.UTC().Format(time.RFC3339)
	end := endUTC.UTC().Format(time.RFC3339)

	var matched []models.Booking
	for _, b := range repo.bookings {
		if b.StartUTC >= start && b.StartUTC < end {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartUTC < matched[j].StartUTC })
	return matched, nil
}

func (repo *MemoryBookingRepo) FindOverlapping(ctx context.Context, startUTC, endUTC time.Time) (*models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	start := startUTC.UTC().Format(time.RFC3339)
	end := endUTC.UTC().Format(time.RFC3339)

	for _, b := range repo.bookings {
		if b.StartUTC < end && b.EndUTC > start {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *MemoryBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, b := range repo.bookings {
		if b.StartUTC == booking.StartUTC {
			return ErrDuplicateSlot
		}
	}
	repo.bookings = append(repo.bookings, *booking)
	return nil
}

// Seed adds a record directly, bypassing the uniqueness check. Tests use it
// to plant malformed or conflicting documents.
func (repo *MemoryBookingRepo) Seed(booking models.Booking) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.bookings = append(repo.bookings, booking)
}
