package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/metinatakli/cinema-ticket-service/internal/mocks"
	"github.com/metinatakli/cinema-ticket-service/internal/ticket"
	"github.com/metinatakli/cinema-ticket-service/internal/validator"
)

func newTestConfig() Config {
	return Config{
		Port:            3000,
		Env:             "test",
		PaymentProvider: PaymentProviderLog,
		SeatStore:       SeatStoreRedis,
		Pricing:         domain.DefaultPricingConfig(),
	}
}

func newTestApplication(
	t *testing.T,
	payments domain.TicketPaymentService,
	seats domain.SeatReservationService,
	opts ...func(*Config)) *Application {

	t.Helper()

	if payments == nil {
		payments = &mocks.MockPaymentService{}
	}
	if seats == nil {
		seats = &mocks.MockSeatReservationService{}
	}

	cfg := newTestConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tickets, err := ticket.NewTicketService(cfg.Pricing, payments, seats, logger)
	if err != nil {
		t.Fatal(err)
	}

	app, err := NewApp(cfg, logger, validator.NewValidator(), tickets)
	if err != nil {
		t.Fatal(err)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
		reader = http.NoBody
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
	wantReason     string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var errorResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}

	if tt.wantReason != "" && errorResp.Reason != tt.wantReason {
		t.Errorf("Error reason = %v, want %v", errorResp.Reason, tt.wantReason)
	}
}
