package integration_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const (
	dbName         = "cinema_tickets"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	migrationsSource = "file://../../migrations"
	seatKeyPattern   = "seat_reservations:*"
	redisResetBatch  = 100
)

// seatStores runs the two seat reservation backends the service can be configured with.
type seatStores struct {
	postgres *postgres.PostgresContainer
	redis    *tcredis.RedisContainer

	DSN       string
	RedisAddr string
}

func startSeatStores(ctx context.Context) (*seatStores, error) {
	stores := &seatStores{}

	pg, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}
	stores.postgres = pg

	stores.DSN, err = pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stores.terminate()
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	err = migrateSeatReservations(stores.DSN)
	if err != nil {
		stores.terminate()
		return nil, err
	}

	rc, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		stores.terminate()
		return nil, fmt.Errorf("start redis: %w", err)
	}
	stores.redis = rc

	stores.RedisAddr, err = rc.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		stores.terminate()
		return nil, fmt.Errorf("redis endpoint: %w", err)
	}

	return stores, nil
}

// migrateSeatReservations applies migrations/ through the pgx v5 driver, which
// golang-migrate selects by the pgx5 scheme.
func migrateSeatReservations(dsn string) error {
	m, err := migrate.New(migrationsSource, strings.Replace(dsn, "postgres://", "pgx5://", 1))
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate seat_reservations: %w", err)
	}

	return nil
}

// reset empties the reservation table and removes every seat counter key.
func (s *seatStores) reset(ctx context.Context, db *pgxpool.Pool, rdb *redis.Client) error {
	_, err := db.Exec(ctx, "TRUNCATE seat_reservations RESTART IDENTITY")
	if err != nil {
		return fmt.Errorf("truncate seat_reservations: %w", err)
	}

	iter := rdb.Scan(ctx, 0, seatKeyPattern, redisResetBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan seat keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	return rdb.Del(ctx, keys...).Err()
}

func (s *seatStores) terminate() {
	if s.postgres != nil {
		if err := testcontainers.TerminateContainer(s.postgres); err != nil {
			log.Printf("failed to terminate postgres: %s", err)
		}
	}
	if s.redis != nil {
		if err := testcontainers.TerminateContainer(s.redis); err != nil {
			log.Printf("failed to terminate redis: %s", err)
		}
	}
}
