package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/metinatakli/cinema-ticket-service/internal/payment"
)

func (app *Application) PurchaseTicketsHandler(
	w http.ResponseWriter,
	r *http.Request,
	params api.PurchaseTicketsHandlerParams) {

	input, requests, ok := app.readPurchaseRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if params.IdempotencyKey != nil {
		ctx = payment.WithIdempotencyKey(ctx, params.IdempotencyKey.String())
	}

	purchase, err := app.tickets.PurchaseTickets(ctx, input.AccountId, requests)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	app.metrics.recordSale(r.Context(), purchase)

	err = app.writeJSON(w, http.StatusCreated, toPurchaseResponse(purchase), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) QuotePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	input, requests, ok := app.readPurchaseRequest(w, r)
	if !ok {
		return
	}

	purchase, err := app.tickets.Quote(input.AccountId, requests)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toPurchaseResponse(purchase), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readPurchaseRequest decodes and validates the body. It writes the error response
// itself and returns false when the handler should stop.
func (app *Application) readPurchaseRequest(
	w http.ResponseWriter,
	r *http.Request) (api.PurchaseTicketsRequest, []domain.TicketTypeRequest, bool) {

	var input api.PurchaseTicketsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return input, nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.metrics.recordOutcome(r.Context(), outcomeValidationFailed)
		app.failedValidationResponse(w, r, err)
		return input, nil, false
	}

	requests, err := toTicketTypeRequests(input.Tickets)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return input, nil, false
	}

	return input, requests, true
}

func (app *Application) purchaseErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var purchaseErr *domain.InvalidPurchaseError
	if errors.As(err, &purchaseErr) {
		app.logger.Warn("purchase rejected", "reason", purchaseErr.Reason, "detail", purchaseErr.Detail)
		app.metrics.recordOutcome(r.Context(), string(purchaseErr.Reason))
		app.invalidPurchaseResponse(w, r, purchaseErr)
		return
	}

	app.metrics.recordOutcome(r.Context(), outcomeError)
	app.serverErrorResponse(w, r, err)
}

func toTicketTypeRequests(tickets []api.TicketRequest) ([]domain.TicketTypeRequest, error) {
	requests := make([]domain.TicketTypeRequest, 0, len(tickets))

	for i, t := range tickets {
		category, err := domain.ParseCategory(t.Category)
		if err != nil {
			return nil, fmt.Errorf("ticket request %d: %w", i, err)
		}

		req, err := domain.NewTicketTypeRequest(category, t.Quantity)
		if err != nil {
			return nil, fmt.Errorf("ticket request %d: %w", i, err)
		}

		requests = append(requests, req)
	}

	return requests, nil
}

func toPurchaseResponse(purchase domain.Purchase) api.PurchaseResponse {
	return api.PurchaseResponse{
		AccountId:  purchase.AccountID,
		Tickets:    purchase.Counts.Map(),
		TotalPrice: purchase.TotalPrice,
		TotalSeats: purchase.TotalSeats,
	}
}
