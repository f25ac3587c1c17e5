package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const totalReservedSeatsKey = "seat_reservations:total"

func accountSeatsKey(accountID int64) string {
	return fmt.Sprintf("seat_reservations:%d", accountID)
}

// SeatCounterClient is the subset of the redis client the seat store needs.
type SeatCounterClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// RedisSeatReservationStore keeps running seat totals per account and overall.
type RedisSeatReservationStore struct {
	client SeatCounterClient
}

func NewRedisSeatReservationStore(client SeatCounterClient) *RedisSeatReservationStore {
	return &RedisSeatReservationStore{
		client: client,
	}
}

func (r *RedisSeatReservationStore) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	if seats == 0 {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrBy(ctx, accountSeatsKey(accountID), int64(seats))
		pipe.IncrBy(ctx, totalReservedSeatsKey, int64(seats))
		return nil
	})
	if err != nil {
		return fmt.Errorf("reserve %d seats for account %d: %w", seats, accountID, err)
	}

	return nil
}

func (r *RedisSeatReservationStore) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	total, err := r.client.Get(ctx, accountSeatsKey(accountID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return total, err
}
