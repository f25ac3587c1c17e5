package mocks

import (
	"context"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
	domain.TicketPaymentService
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, amount int64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}
