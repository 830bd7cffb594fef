package bookingRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotbook/models"
)

func utcAt(h, m int) time.Time {
	return time.Date(2024, 6, 10, h, m, 0, 0, time.UTC)
}

func record(id string, start, end time.Time) *models.Booking {
	return &models.Booking{
		ID:       id,
		StartUTC: start.Format(time.RFC3339),
		EndUTC:   end.Format(time.RFC3339),
	}
}

func TestMemoryRepo_InsertRejectsDuplicateStart(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, record("b1", utcAt(4, 30), utcAt(5, 0))); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	err := repo.Insert(ctx, record("b2", utcAt(4, 30), utcAt(5, 0)))
	if !errors.Is(err, ErrDuplicateSlot) {
		t.Fatalf("expected ErrDuplicateSlot, got %v", err)
	}
}

func TestMemoryRepo_FindInWindowOrdersByStart(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	for _, b := range []*models.Booking{
		record("late", utcAt(10, 0), utcAt(10, 30)),
		record("early", utcAt(4, 0), utcAt(4, 30)),
		record("outside", utcAt(19, 0), utcAt(19, 30)),
	} {
		if err := repo.Insert(ctx, b); err != nil {
			t.Fatalf("insert %s: %v", b.ID, err)
		}
	}

	found, err := repo.FindInWindow(ctx, utcAt(0, 0), utcAt(18, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 || found[0].ID != "early" || found[1].ID != "late" {
		t.Fatalf("expected [early late], got %+v", found)
	}
}

func TestMemoryRepo_FindOverlapping(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	if err := repo.Insert(ctx, record("b1", utcAt(4, 30), utcAt(5, 0))); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	hit, err := repo.FindOverlapping(ctx, utcAt(4, 45), utcAt(5, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit == nil || hit.ID != "b1" {
		t.Fatalf("expected overlap with b1, got %+v", hit)
	}

	// Adjacent intervals share no instant under the half-open test.
	miss, err := repo.FindOverlapping(ctx, utcAt(5, 0), utcAt(5, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if miss != nil {
		t.Fatalf("expected no overlap, got %+v", miss)
	}
}
