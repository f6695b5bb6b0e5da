package adaptor

import (
	"github.com/rauanCheb33/oop-final-project/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Viewer  *ViewerHandler
	Cinema  *CinemaHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Viewer:  NewViewerHandler(service.Viewer, log),
		Cinema:  NewCinemaHandler(service.Cinema, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
