package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"pos-service/internal/domain"
)

const (
	// orderNumberBase is the sequence value of a business unit's first order.
	orderNumberBase = 10001

	// maxNumberAttempts bounds the create-retry loop. The generator is
	// advisory: two racing creations can derive the same number and the
	// unique index decides the loser, which re-derives and retries.
	maxNumberAttempts = 3

	retryJitterFloor = 100 * time.Millisecond
	retryJitterSpan  = 200 * time.Millisecond
)

// nextOrderNumber derives the next number for the unit from the most
// recently created order matching its code prefix: <CODE>-<N>, N starting at
// orderNumberBase. A stored number whose suffix is not numeric is a hard
// error; incrementing past it could silently reissue taken numbers.
func (s *OrderService) nextOrderNumber(ctx context.Context, unit *domain.BusinessUnit) (string, error) {
	prefix := unit.Code + "-"
	latest, err := s.orders.LatestOrderNumber(ctx, unit.ID, prefix)
	if err != nil {
		return "", err
	}

	next := orderNumberBase
	if latest != "" {
		seq, err := strconv.Atoi(strings.TrimPrefix(latest, prefix))
		if err != nil {
			return "", fmt.Errorf("%w: %q", domain.ErrMalformedOrderNumber, latest)
		}
		next = seq + 1
	}
	return fmt.Sprintf("%s%d", prefix, next), nil
}

// createWithUniqueNumber derives a number and attempts the insert, retrying
// with a fresh number only on an order-number uniqueness violation. Every
// other error propagates immediately.
func (s *OrderService) createWithUniqueNumber(ctx context.Context, unit *domain.BusinessUnit, order *domain.Order) error {
	for attempt := 1; ; attempt++ {
		number, err := s.nextOrderNumber(ctx, unit)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		err = s.orders.CreateWithItems(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrOrderNumberConflict) {
			return err
		}
		if attempt >= maxNumberAttempts {
			return domain.ErrOrderNumberExhausted
		}
		time.Sleep(retryJitter())
	}
}

func retryJitter() time.Duration {
	return retryJitterFloor + time.Duration(rand.Int63n(int64(retryJitterSpan)+1))
}
