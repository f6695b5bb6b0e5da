package wire

import (
	"github.com/rauanCheb33/oop-final-project/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/cinemas/{id}/book - Book tickets at a cinema
	r.Post("/api/cinemas/{id}/book", bookingHandler.Book)
}
