package payment

import (
	"context"
	"log/slog"
)

// LoggingPaymentService accepts every payment and only records it in the log.
// It is meant for local development where no Stripe account is available.
type LoggingPaymentService struct {
	logger *slog.Logger
}

func NewLoggingPaymentService(logger *slog.Logger) *LoggingPaymentService {
	return &LoggingPaymentService{logger: logger}
}

func (l *LoggingPaymentService) MakePayment(ctx context.Context, accountID int64, amount int64) error {
	l.logger.InfoContext(ctx, "payment accepted", "account_id", accountID, "amount", amount)
	return nil
}
