package entity

import (
	"github.com/shopspring/decimal"
)

type Movie struct {
	ID              int64           `db:"id"`
	Title           string          `db:"title"`
	Description     string          `db:"description"`
	DurationMinutes int             `db:"duration_minutes"`
	AgeRestriction  int             `db:"age_restriction"`
	TicketPrice     decimal.Decimal `db:"ticket_price"`
}
