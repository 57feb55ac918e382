package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"pos-service/internal/domain"
)

const (
	menuCacheTTL    = time.Minute
	warmupCacheTTL  = 5 * time.Minute
	warmupMaxInFlight = 8
)

func menuCacheKey(id uint64) string {
	return fmt.Sprintf("menu:%d", id)
}

// availableMenuItems resolves catalog entries, serving from redis when a
// client is configured. Only available items are ever cached, and the short
// TTL keeps price and availability edits from going stale for long.
func (s *OrderService) availableMenuItems(ctx context.Context, businessUnitID uint64, ids []uint64) ([]domain.MenuItem, error) {
	if s.redisClient == nil {
		return s.menu.FindAvailableByIDs(ctx, businessUnitID, ids)
	}

	out := make([]domain.MenuItem, 0, len(ids))
	misses := make([]uint64, 0, len(ids))
	for _, id := range ids {
		cached, err := s.redisClient.Get(ctx, menuCacheKey(id)).Result()
		if err != nil {
			misses = append(misses, id)
			continue
		}
		var mi domain.MenuItem
		if err := json.Unmarshal([]byte(cached), &mi); err != nil || mi.BusinessUnitID != businessUnitID {
			misses = append(misses, id)
			continue
		}
		out = append(out, mi)
	}

	if len(misses) > 0 {
		fetched, err := s.menu.FindAvailableByIDs(ctx, businessUnitID, misses)
		if err != nil {
			return nil, err
		}
		for _, mi := range fetched {
			if data, err := json.Marshal(mi); err == nil {
				s.redisClient.Set(ctx, menuCacheKey(mi.ID), data, menuCacheTTL)
			}
		}
		out = append(out, fetched...)
	}
	return out, nil
}

// WarmupMenuCache preloads every available menu item of the unit into redis.
// Called from main at startup; a nil redis client makes it a no-op.
func (s *OrderService) WarmupMenuCache(ctx context.Context, businessUnitID uint64) error {
	if s.redisClient == nil {
		return nil
	}

	items, err := s.menu.ListAvailable(ctx, businessUnitID)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmupMaxInFlight)
	for _, mi := range items {
		mi := mi
		g.Go(func() error {
			data, err := json.Marshal(mi)
			if err != nil {
				return err
			}
			if err := s.redisClient.Set(ctx, menuCacheKey(mi.ID), data, warmupCacheTTL).Err(); err != nil {
				log.Printf("Failed to warm up cache for menu item %d: %v", mi.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
