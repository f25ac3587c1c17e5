package domain

import "context"

// SeatReservationService reserves a number of seats for an account.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}
