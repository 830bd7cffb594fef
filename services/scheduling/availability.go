package scheduling

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.uber.org/zap"
)

// Availability returns the generated slot grid for the date minus the slots
// already reserved in the store.
func (s *DefaultSchedulingService) Availability(ctx context.Context, date string) (*models.AvailabilityResponse, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.Zone)
	if err != nil {
		return nil, ErrInvalidDate
	}

	grid := SlotGrid(day)
	if len(grid) == 0 {
		// Weekend: nothing bookable, no store access needed.
		return &models.AvailabilityResponse{Date: date, Slots: []string{}}, nil
	}

	if cached := s.cachedAvailability(ctx, date); cached != nil {
		return cached, nil
	}

	// The local day as an absolute half-open window [midnight, midnight+24h).
	dayStart := day.UTC()
	dayEnd := day.Add(24 * time.Hour).UTC()

	existing, err := s.Repo.FindInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings for %s: %w", date, err)
	}

	taken := make(map[string]bool, len(existing))
	for _, b := range existing {
		start, perr := time.Parse(time.RFC3339, b.StartUTC)
		if perr != nil {
			// Lenient by design: a corrupt record must not take the whole
			// day's availability down with it, but it is worth noticing.
			s.logger().Warn("skipping booking with unparsable start instant",
				zap.String("bookingId", b.ID),
				zap.String("startUtc", b.StartUTC))
			continue
		}
		taken[start.In(s.Zone).Format(timeLayout)] = true
	}

	slots := make([]string, 0, len(grid))
	for _, slot := range grid {
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}

	resp := &models.AvailabilityResponse{Date: date, Slots: slots}
	s.cacheAvailability(ctx, date, resp)
	return resp, nil
}
