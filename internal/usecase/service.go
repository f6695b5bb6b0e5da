package usecase

import (
	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/pkg/database"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Viewer  ViewerService
	Cinema  CinemaService
	Booking BookingService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, log),
		Viewer:  NewViewerService(repo, log),
		Cinema:  NewCinemaService(repo, log),
		Booking: NewBookingService(db, repo, config.Booking, log),
	}
}
