package repository

import (
	"github.com/rauanCheb33/oop-final-project/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Viewer   ViewerRepository
	Cinema   CinemaRepository
	Schedule ScheduleRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Viewer:   NewViewerRepository(db, log),
		Cinema:   NewCinemaRepository(db, log),
		Schedule: NewScheduleRepository(db, log),
	}
}
