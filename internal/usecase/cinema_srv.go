package usecase

import (
	"context"
	"fmt"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/dto/response"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"go.uber.org/zap"
)

type CinemaService interface {
	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	GetCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	GetCinemaByID(ctx context.Context, id int64) (*response.CinemaResponse, error)
	UpdateCinema(ctx context.Context, id int64, req *request.CinemaRequest) (*response.CinemaResponse, error)
	DeleteCinema(ctx context.Context, id int64) error

	// Schedule management: which movies play in a cinema and how many
	// seats are still bookable for each.
	GetSchedule(ctx context.Context, cinemaID int64) ([]response.ScheduleItemResponse, error)
	UpsertSchedule(ctx context.Context, cinemaID int64, req *request.ScheduleUpsertRequest) error
	DeleteScheduleEntry(ctx context.Context, cinemaID, movieID int64) error
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cinema := &entity.Cinema{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		return nil, err
	}

	s.log.Info("Cinema created",
		zap.Int64("cinema_id", cinema.ID),
		zap.String("name", cinema.Name),
	)

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) GetCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.CinemasToResponse(cinemas), nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, id int64) (*response.CinemaResponse, error) {
	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cinema == nil {
		return nil, &repository.NotFoundError{Entity: "Cinema", ID: id}
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, id int64, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cinema := &entity.Cinema{
		ID:      id,
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}

	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		return nil, err
	}

	s.log.Info("Cinema updated", zap.Int64("cinema_id", id))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) DeleteCinema(ctx context.Context, id int64) error {
	return s.repo.Cinema.Delete(ctx, id)
}

func (s *cinemaService) GetSchedule(ctx context.Context, cinemaID int64) ([]response.ScheduleItemResponse, error) {
	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaID)
	if err != nil {
		return nil, err
	}
	if cinema == nil {
		return nil, &repository.NotFoundError{Entity: "Cinema", ID: cinemaID}
	}

	items, err := s.repo.Schedule.ListByCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	return response.ScheduleItemsToResponse(items), nil
}

func (s *cinemaService) UpsertSchedule(ctx context.Context, cinemaID int64, req *request.ScheduleUpsertRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert schedule validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Check parents first so the handler can answer with a proper 404
	// instead of a foreign key violation.
	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaID)
	if err != nil {
		return err
	}
	if cinema == nil {
		return &repository.NotFoundError{Entity: "Cinema", ID: cinemaID}
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return &repository.NotFoundError{Entity: "Movie", ID: req.MovieID}
	}

	entry := &entity.ScheduleEntry{
		CinemaID: cinemaID,
		MovieID:  req.MovieID,
		Seats:    req.Seats,
	}

	if err := s.repo.Schedule.Upsert(ctx, entry); err != nil {
		return err
	}

	s.log.Info("Schedule entry upserted",
		zap.Int64("cinema_id", cinemaID),
		zap.Int64("movie_id", req.MovieID),
		zap.Int("seats", req.Seats),
	)

	return nil
}

func (s *cinemaService) DeleteScheduleEntry(ctx context.Context, cinemaID, movieID int64) error {
	return s.repo.Schedule.Delete(ctx, cinemaID, movieID)
}
