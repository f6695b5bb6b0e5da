package response

import (
	"github.com/shopspring/decimal"
)

// BookingResult reports the outcome of a booking attempt. A business
// failure (no seats, no funds, under age, movie not scheduled) is a
// regular result with Success=false, not an error: the booking endpoint
// returns it with a 200 so callers inspect the body, not the status.
// RemainingSeats and ViewerBalance are set only on success.
type BookingResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	RemainingSeats *int     `json:"remaining_seats,omitempty"`
	ViewerBalance  *float64 `json:"viewer_balance,omitempty"`
}

func BookingSuccess(message string, remainingSeats int, viewerBalance decimal.Decimal) *BookingResult {
	balance := viewerBalance.InexactFloat64()
	return &BookingResult{
		Success:        true,
		Message:        message,
		RemainingSeats: &remainingSeats,
		ViewerBalance:  &balance,
	}
}

func BookingFailure(message string) *BookingResult {
	return &BookingResult{
		Success: false,
		Message: message,
	}
}
