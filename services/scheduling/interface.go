package scheduling

import (
	"context"
	"time"

	bookingRepo "slotbook/database/repository/booking"
	"slotbook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SchedulingService defines the two operations of the booking calendar.
type SchedulingService interface {
	// Availability returns the open slot start-times for a calendar date.
	Availability(ctx context.Context, date string) (*models.AvailabilityResponse, error)
	// Book validates a booking request, checks for conflicts and persists it.
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Repo bookingRepo.BookingRepository
	// Cache is optional; nil disables availability caching.
	Cache    *redis.Client
	CacheTTL time.Duration
	// Zone is the calendar's fixed-offset timezone, Label its display name.
	Zone   *time.Location
	Label  string
	Logger *zap.Logger
}

func (s *DefaultSchedulingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}
