package integration_test

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticket-service/internal/app"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/metinatakli/cinema-ticket-service/internal/payment"
	"github.com/metinatakli/cinema-ticket-service/internal/repository"
	"github.com/metinatakli/cinema-ticket-service/internal/ticket"
	appvalidator "github.com/metinatakli/cinema-ticket-service/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App      *app.Application
	RedisApp *app.Application
	DB       *pgxpool.Pool
	Redis    *redis.Client

	PostgresSeats *repository.PostgresSeatReservationRepository
	RedisSeats    *repository.RedisSeatReservationStore
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	payments := payment.NewLoggingPaymentService(logger)

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	postgresSeats := repository.NewPostgresSeatReservationRepository(db)
	redisSeats := repository.NewRedisSeatReservationStore(redisClient)

	postgresApp, err := newApplication(cfg, logger, validator, payments, postgresSeats)
	if err != nil {
		return nil, err
	}

	redisCfg := cfg
	redisCfg.SeatStore = app.SeatStoreRedis

	redisApp, err := newApplication(redisCfg, logger, validator, payments, redisSeats)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:           postgresApp,
		RedisApp:      redisApp,
		DB:            db,
		Redis:         redisClient,
		PostgresSeats: postgresSeats,
		RedisSeats:    redisSeats,
	}, nil
}

func newApplication(
	cfg app.Config,
	logger *slog.Logger,
	validator *validator.Validate,
	payments domain.TicketPaymentService,
	seats domain.SeatReservationService) (*app.Application, error) {

	tickets, err := ticket.NewTicketService(cfg.Pricing, payments, seats, logger)
	if err != nil {
		return nil, err
	}

	return app.NewApp(cfg, logger, validator, tickets)
}
