package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	bookingRepo "slotbook/database/repository/booking"
	"slotbook/models"
)

func newTestService() (*DefaultSchedulingService, *bookingRepo.MemoryBookingRepo) {
	repo := bookingRepo.NewMemoryBookingRepo()
	svc := &DefaultSchedulingService{
		Repo:   repo,
		Zone:   istZone(),
		Label:  "IST",
		Logger: zap.NewNop(),
	}
	return svc, repo
}

func TestAvailability_EmptyCalendarReturnsFullGrid(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Availability(context.Background(), "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Date != "2024-06-10" {
		t.Fatalf("expected date 2024-06-10, got %s", resp.Date)
	}
	if len(resp.Slots) != 16 {
		t.Fatalf("expected 16 slots, got %d: %v", len(resp.Slots), resp.Slots)
	}
	if resp.Slots[0] != "09:00" || resp.Slots[15] != "16:30" {
		t.Fatalf("expected grid 09:00..16:30, got %v", resp.Slots)
	}
}

func TestAvailability_WeekendEmpty(t *testing.T) {
	svc, _ := newTestService()

	for _, date := range []string{"2024-06-08", "2024-06-09"} {
		resp, err := svc.Availability(context.Background(), date)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", date, err)
		}
		if len(resp.Slots) != 0 {
			t.Fatalf("%s: expected no slots, got %v", date, resp.Slots)
		}
	}
}

func TestAvailability_InvalidDate(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Availability(context.Background(), "10-06-2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAvailability_ExcludesBookedSlot(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Book(context.Background(), models.BookingRequest{
		Name: "A", Email: "a@x.com", Date: "2024-06-10", Time: "10:00",
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	resp, err := svc.Availability(context.Background(), "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Slots) != 15 {
		t.Fatalf("expected 15 slots after booking, got %d", len(resp.Slots))
	}
	for _, slot := range resp.Slots {
		if slot == "10:00" {
			t.Fatalf("expected 10:00 to be excluded, got %v", resp.Slots)
		}
	}
}

func TestAvailability_SkipsMalformedStoredRecord(t *testing.T) {
	svc, repo := newTestService()

	// Sorts inside the day's window but fails RFC3339 parsing (no zone suffix).
	repo.Seed(models.Booking{
		ID:       "corrupt-1",
		StartUTC: "2024-06-10T04:30:00",
		EndUTC:   "2024-06-10T05:00:00",
	})

	resp, err := svc.Availability(context.Background(), "2024-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Slots) != 16 {
		t.Fatalf("expected malformed record to be skipped and 16 slots shown, got %d", len(resp.Slots))
	}
}

func TestAvailability_StoreErrorPropagates(t *testing.T) {
	svc, _ := newTestService()
	svc.Repo = failingRepo{}

	_, err := svc.Availability(context.Background(), "2024-06-10")
	if err == nil {
		t.Fatal("expected a store error")
	}
	if IsValidationError(err) || errors.Is(err, ErrSlotTaken) {
		t.Fatalf("store failure must not look like a client error, got %v", err)
	}
}

// failingRepo simulates an unavailable store.
type failingRepo struct{}

func (failingRepo) FindInWindow(ctx context.Context, startUTC, endUTC time.Time) ([]models.Booking, error) {
	return nil, errors.New("store unavailable")
}

func (failingRepo) FindOverlapping(ctx context.Context, startUTC, endUTC time.Time) (*models.Booking, error) {
	return nil, errors.New("store unavailable")
}

func (failingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	return errors.New("store unavailable")
}
