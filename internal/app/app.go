package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/metinatakli/cinema-ticket-service/internal/payment"
	"github.com/metinatakli/cinema-ticket-service/internal/repository"
	"github.com/metinatakli/cinema-ticket-service/internal/ticket"
	appvalidator "github.com/metinatakli/cinema-ticket-service/internal/validator"
	"github.com/metinatakli/cinema-ticket-service/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

const serviceName = "cinema-ticket-service"

const (
	PaymentProviderStripe = "stripe"
	PaymentProviderLog    = "log"

	SeatStorePostgres = "postgres"
	SeatStoreRedis    = "redis"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	tickets   *ticket.TicketService
	metrics   *purchaseMetrics
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	PaymentProvider  string
	SeatStore        string
	Pricing          domain.PricingConfig
	DB               DBConfig
	Redis            RedisConfig
	Stripe           StripeConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey     string
	PaymentMethod string
}

// ParseConfig reads the command line flags. The returned bool reports whether only the
// version was requested.
func ParseConfig(args []string) (Config, bool, error) {
	var cfg Config

	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.Port, "port", 3000, "server port")
	fs.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	fs.IntVar(&cfg.Pricing.MaxTickets, "max-tickets", domain.DefaultMaxTickets, "Maximum tickets per purchase")
	fs.Int64Var(&cfg.Pricing.Prices[domain.Adult], "price-adult", domain.DefaultAdultPrice, "Adult ticket price")
	fs.Int64Var(&cfg.Pricing.Prices[domain.Child], "price-child", domain.DefaultChildPrice, "Child ticket price")
	fs.Int64Var(&cfg.Pricing.Prices[domain.Infant], "price-infant", domain.DefaultInfantPrice, "Infant ticket price")
	fs.BoolVar(&cfg.Pricing.EnforceInfantRatio, "enforce-infant-ratio", true, "Reject purchases with more infants than adults")

	fs.StringVar(&cfg.PaymentProvider, "payment-provider", PaymentProviderLog, "Payment provider (stripe|log)")
	fs.StringVar(&cfg.SeatStore, "seat-store", SeatStorePostgres, "Seat reservation store (postgres|redis)")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	fs.StringVar(&cfg.Stripe.SecretKey, "stripe-key", "", "Stripe secret key")
	fs.StringVar(&cfg.Stripe.PaymentMethod, "stripe-payment-method", "pm_card_visa", "Stripe payment method used to confirm charges")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	if *displayVersion {
		return cfg, true, nil
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, false, err
	}

	return cfg, false, nil
}

func (cfg Config) Validate() error {
	err := cfg.Pricing.Validate()
	if err != nil {
		return fmt.Errorf("invalid pricing: %w", err)
	}

	switch cfg.PaymentProvider {
	case PaymentProviderLog:
	case PaymentProviderStripe:
		if cfg.Stripe.SecretKey == "" {
			return errors.New("stripe-key is required when the stripe payment provider is used")
		}
	default:
		return fmt.Errorf("unknown payment provider %q", cfg.PaymentProvider)
	}

	switch cfg.SeatStore {
	case SeatStorePostgres:
		if cfg.DB.DSN == "" {
			return errors.New("db-dsn is required when the postgres seat store is used")
		}
	case SeatStoreRedis:
		if cfg.Redis.URL == "" {
			return errors.New("redis-url is required when the redis seat store is used")
		}
	default:
		return fmt.Errorf("unknown seat store %q", cfg.SeatStore)
	}

	return nil
}

func Run() error {
	cfg, displayVersion, err := ParseConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	shutdownTelemetry, err := initTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(newTeeHandler(textHandler, otelslog.NewHandler(serviceName)))
	}

	payments, err := newPaymentService(cfg, logger)
	if err != nil {
		return err
	}

	seats, closeSeats, err := newSeatReservationService(cfg)
	if err != nil {
		return err
	}
	defer closeSeats()

	tickets, err := ticket.NewTicketService(cfg.Pricing, payments, seats, logger)
	if err != nil {
		return err
	}

	app, err := NewApp(cfg, logger, appvalidator.NewValidator(), tickets)
	if err != nil {
		return err
	}

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	tickets *ticket.TicketService) (*Application, error) {

	metrics, err := newPurchaseMetrics(otel.GetMeterProvider())
	if err != nil {
		return nil, err
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		tickets:   tickets,
		metrics:   metrics,
	}, nil
}

func newPaymentService(cfg Config, logger *slog.Logger) (domain.TicketPaymentService, error) {
	switch cfg.PaymentProvider {
	case PaymentProviderStripe:
		stripe.Key = cfg.Stripe.SecretKey
		return payment.NewStripePaymentService(cfg.Stripe.PaymentMethod), nil
	case PaymentProviderLog:
		return payment.NewLoggingPaymentService(logger), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.PaymentProvider)
	}
}

func newSeatReservationService(cfg Config) (domain.SeatReservationService, func(), error) {
	switch cfg.SeatStore {
	case SeatStorePostgres:
		db, err := NewDatabasePool(cfg)
		if err != nil {
			return nil, nil, err
		}

		return repository.NewPostgresSeatReservationRepository(db), db.Close, nil
	case SeatStoreRedis:
		rdb, err := NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}

		return repository.NewRedisSeatReservationStore(rdb), func() { rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown seat store %q", cfg.SeatStore)
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server",
		"addr", srv.Addr,
		"env", app.config.Env,
		"payment_provider", app.config.PaymentProvider,
		"seat_store", app.config.SeatStore,
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.badRequestResponse,
	})
}
