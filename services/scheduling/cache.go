package scheduling

import (
	"context"
	"encoding/json"

	"slotbook/models"

	"go.uber.org/zap"
)

// Availability responses are cached per date with a short TTL and dropped as
// soon as a booking lands on that date. Cache failures never fail a request;
// reads fall through to the store.

func availabilityCacheKey(date string) string {
	return "availability:" + date
}

func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, date string) *models.AvailabilityResponse {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, availabilityCacheKey(date)).Result()
	if err != nil {
		return nil
	}
	var resp models.AvailabilityResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultSchedulingService) cacheAvailability(ctx context.Context, date string, resp *models.AvailabilityResponse) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityCacheKey(date), data, s.CacheTTL).Err(); err != nil {
		s.logger().Warn("failed to cache availability", zap.String("date", date), zap.Error(err))
	}
}

func (s *DefaultSchedulingService) invalidateAvailability(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(date)).Err(); err != nil {
		s.logger().Warn("failed to invalidate availability cache", zap.String("date", date), zap.Error(err))
	}
}
