package mocks

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockSeatCounter mocks the redis calls of the seat store. TxPipelined runs the
// callback against a SeatCounterPipeline and passes the queued increments to the
// mock, so expectations can assert on the whole transaction.
type MockSeatCounter struct {
	mock.Mock
}

func (m *MockSeatCounter) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockSeatCounter) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	pipe := &SeatCounterPipeline{Increments: make(map[string]int64)}

	err := fn(pipe)
	if err != nil {
		return nil, err
	}

	args := m.Called(ctx, pipe.Increments)
	return nil, args.Error(0)
}

// SeatCounterPipeline records IncrBy calls. Any other pipeline command panics.
type SeatCounterPipeline struct {
	redis.Pipeliner
	Increments map[string]int64
}

func (p *SeatCounterPipeline) IncrBy(ctx context.Context, key string, value int64) *redis.IntCmd {
	p.Increments[key] += value
	return redis.NewIntCmd(ctx)
}
