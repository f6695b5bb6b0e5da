package entity

import (
	"github.com/shopspring/decimal"
)

// Viewer balance is the only viewer field the booking flow mutates.
type Viewer struct {
	ID      int64           `db:"id"`
	Name    string          `db:"name"`
	Age     int             `db:"age"`
	Balance decimal.Decimal `db:"balance"`
}
