package integration_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-ticket-service/internal/app"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	app    *TestApp
	stores *seatStores
	server *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	stores, err := startSeatStores(ctx)
	s.Require().NoError(err, "failed to start seat stores")
	s.stores = stores

	cfg := app.Config{
		Port:            3000,
		Env:             "test",
		PaymentProvider: app.PaymentProviderLog,
		SeatStore:       app.SeatStorePostgres,
		Pricing:         domain.DefaultPricingConfig(),
		DB: app.DBConfig{
			DSN:          stores.DSN,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          stores.RedisAddr,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
	}

	testApp, err := newTestApp(cfg)
	s.Require().NoError(err, "cannot initialize app")

	s.app = testApp
	s.server = httptest.NewServer(testApp.App.Routes())
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.app != nil {
		s.app.DB.Close()
		s.app.Redis.Close()
	}
	if s.stores != nil {
		s.stores.terminate()
	}
}

// SetupTest starts every test with no reservations in either store.
func (s *BaseSuite) SetupTest() {
	s.Require().NoError(s.stores.reset(context.Background(), s.app.DB, s.app.Redis))
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	Handler          func(app *TestApp) http.Handler
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req := newRequest(s.Method, s.URL, s.Body, s.Headers)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		handler := testApp.App.Routes()
		if s.Handler != nil {
			handler = s.Handler(testApp)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			assertJSONBody(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
