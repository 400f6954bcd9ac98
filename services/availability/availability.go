package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"docport/models"
	"docport/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ComputeAvailability loads the full catalog plus the bookings recorded for
// the requested date, then subtracts each treatment's booked slots from its
// configured slot list. The date is matched by plain string equality; no
// calendar normalization or timezone handling happens here.
func (s *DefaultAvailabilityService) ComputeAvailability(date string) ([]models.TreatmentOption, error) {
	if cached, ok := s.cacheGet(date); ok {
		return cached, nil
	}

	options, err := s.Treatments.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load treatment catalog: %w", err)
	}

	booked, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	// Index booked slots by treatment name.
	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range booked {
		slots, ok := bookedByTreatment[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	// Replace each option's slot list with its remaining slots, preserving
	// the configured order.
	for i := range options {
		taken := bookedByTreatment[options[i].Name]
		if len(taken) == 0 {
			continue
		}
		remaining := make([]string, 0, len(options[i].Slots))
		for _, slot := range options[i].Slots {
			if _, used := taken[slot]; !used {
				remaining = append(remaining, slot)
			}
		}
		options[i].Slots = remaining
	}

	s.cacheSet(date, options)
	return options, nil
}

// InvalidateDate drops the cached availability for a date. Booking creation
// calls this so freshly taken slots disappear immediately.
func (s *DefaultAvailabilityService) InvalidateDate(date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.AvailabilityCachePrefix+date).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate availability cache", zap.String("date", date), zap.Error(err))
	}
}

// InvalidateAll drops every cached availability entry.
func (s *DefaultAvailabilityService) InvalidateAll() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := s.Cache.Scan(ctx, 0, utils.AvailabilityCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("Failed to invalidate availability cache key", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("Availability cache scan failed", zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) cacheGet(date string) ([]models.TreatmentOption, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, utils.AvailabilityCachePrefix+date).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Availability cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var options []models.TreatmentOption
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil, false
	}
	return options, true
}

func (s *DefaultAvailabilityService) cacheSet(date string, options []models.TreatmentOption) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return
	}

	ttl := time.Duration(s.CacheTTL) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, utils.AvailabilityCachePrefix+date, raw, ttl).Err(); err != nil {
		utils.GetLogger().Warn("Availability cache write failed", zap.Error(err))
	}
}
