package domain

type Purchase struct {
	AccountID  int64
	Counts     TicketCounts
	TotalPrice int64
	TotalSeats int
}
