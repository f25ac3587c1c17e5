package domain

import "context"

// TicketPaymentService charges an account for a purchase.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int64) error
}
