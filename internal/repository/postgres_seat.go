package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatReservationRepository(db *pgxpool.Pool) *PostgresSeatReservationRepository {
	return &PostgresSeatReservationRepository{
		db: db,
	}
}

func (p *PostgresSeatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	if seats == 0 {
		return nil
	}

	query := `
		INSERT INTO seat_reservations (
			account_id,
			seat_count
		)
		VALUES ($1, $2)
	`

	_, err := p.db.Exec(ctx, query, accountID, seats)
	return err
}

func (p *PostgresSeatReservationRepository) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(seat_count), 0)
		FROM seat_reservations
		WHERE account_id = $1
	`

	var total int
	err := p.db.QueryRow(ctx, query, accountID).Scan(&total)

	return total, err
}
