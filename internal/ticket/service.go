package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
)

// TicketService validates and prices ticket purchases and hands the result to the
// payment and seat reservation services.
type TicketService struct {
	cfg      domain.PricingConfig
	payments domain.TicketPaymentService
	seats    domain.SeatReservationService
	logger   *slog.Logger
}

func NewTicketService(
	cfg domain.PricingConfig,
	payments domain.TicketPaymentService,
	seats domain.SeatReservationService,
	logger *slog.Logger) (*TicketService, error) {

	if payments == nil {
		return nil, errors.New("ticket payment service is required")
	}

	if seats == nil {
		return nil, errors.New("seat reservation service is required")
	}

	if logger == nil {
		return nil, errors.New("logger is required")
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	return &TicketService{
		cfg:      cfg,
		payments: payments,
		seats:    seats,
		logger:   logger,
	}, nil
}

// PurchaseTickets charges the account and reserves seats once every rule passes.
// Collaborator failures are returned as is; nothing is retried or rolled back.
func (s *TicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests []domain.TicketTypeRequest) (domain.Purchase, error) {

	purchase, err := s.Quote(accountID, requests)
	if err != nil {
		return domain.Purchase{}, err
	}

	err = s.payments.MakePayment(ctx, accountID, purchase.TotalPrice)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("make payment: %w", err)
	}

	err = s.seats.ReserveSeat(ctx, accountID, purchase.TotalSeats)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("reserve seats: %w", err)
	}

	s.logger.Info("tickets purchased",
		"account_id", accountID,
		"total_price", purchase.TotalPrice,
		"total_seats", purchase.TotalSeats,
		"tickets", purchase.Counts.Total(),
	)

	return purchase, nil
}

// Quote runs validation and pricing without touching the collaborators.
func (s *TicketService) Quote(accountID int64, requests []domain.TicketTypeRequest) (domain.Purchase, error) {
	if accountID <= 0 {
		return domain.Purchase{}, domain.NewInvalidPurchaseError(
			domain.ReasonInvalidAccount,
			fmt.Sprintf("account ID must be greater than zero, got %d", accountID),
		)
	}

	if len(requests) == 0 {
		return domain.Purchase{}, domain.NewInvalidPurchaseError(
			domain.ReasonNoRequests,
			"at least one ticket request is required",
		)
	}

	counts, err := aggregate(requests)
	if err != nil {
		return domain.Purchase{}, err
	}

	err = s.checkRules(counts)
	if err != nil {
		return domain.Purchase{}, err
	}

	return domain.Purchase{
		AccountID:  accountID,
		Counts:     counts,
		TotalPrice: s.totalPrice(counts),
		TotalSeats: counts.Seats(),
	}, nil
}

func aggregate(requests []domain.TicketTypeRequest) (domain.TicketCounts, error) {
	var counts domain.TicketCounts

	for i, req := range requests {
		err := req.Validate()
		if err != nil {
			return domain.TicketCounts{}, fmt.Errorf("ticket request %d: %w", i, err)
		}

		counts.Add(req.Category(), req.Quantity())
	}

	return counts, nil
}

func (s *TicketService) checkRules(counts domain.TicketCounts) error {
	total := counts.Total()
	if total > s.cfg.MaxTickets {
		return domain.NewInvalidPurchaseError(
			domain.ReasonLimitExceeded,
			fmt.Sprintf("%d tickets requested, at most %d allowed per purchase", total, s.cfg.MaxTickets),
		)
	}

	adults := counts.Get(domain.Adult)
	if adults == 0 && (counts.Get(domain.Child) > 0 || counts.Get(domain.Infant) > 0) {
		return domain.NewInvalidPurchaseError(
			domain.ReasonMissingAdult,
			"child and infant tickets must be purchased with at least one adult ticket",
		)
	}

	infants := counts.Get(domain.Infant)
	if s.cfg.EnforceInfantRatio && infants > adults {
		return domain.NewInvalidPurchaseError(
			domain.ReasonInfantRatioExceeded,
			fmt.Sprintf("%d infants cannot sit on the laps of %d adults", infants, adults),
		)
	}

	return nil
}

func (s *TicketService) totalPrice(counts domain.TicketCounts) int64 {
	var total int64
	for _, category := range domain.Categories() {
		total += int64(counts.Get(category)) * s.cfg.Price(category)
	}

	return total
}
