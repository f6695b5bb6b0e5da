package usecase

import (
	"errors"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"

	"github.com/shopspring/decimal"
)

// ErrNonPositiveQuantity is returned by PriceForTickets when asked to
// price zero or fewer tickets.
var ErrNonPositiveQuantity = errors.New("quantity must be positive")

// Booking eligibility and pricing rules. All of them are pure: no I/O,
// no knowledge of persistence, inclusive thresholds throughout — an
// exact balance match and an exact seat match are both allowed.

// AllowedForAge reports whether a viewer of the given age may watch the
// movie.
func AllowedForAge(movie *entity.Movie, viewerAge int) bool {
	return viewerAge >= movie.AgeRestriction
}

// PriceForTickets computes the total price of quantity tickets.
func PriceForTickets(movie *entity.Movie, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, ErrNonPositiveQuantity
	}
	return movie.TicketPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// CanAfford reports whether balance covers amount.
func CanAfford(balance, amount decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(amount)
}

// HasSeats reports whether available seats cover the requested quantity.
func HasSeats(available, quantity int) bool {
	return available >= quantity
}
