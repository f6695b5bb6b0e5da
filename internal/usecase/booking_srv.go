package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/dto/response"
	"github.com/rauanCheb33/oop-final-project/pkg/database"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"go.uber.org/zap"
)

// MsgNotScheduled is returned when the cinema and the movie both exist
// but no schedule entry links them.
const MsgNotScheduled = "movie is not available in this cinema"

type BookingService interface {
	// Book atomically checks eligibility and, if all checks pass,
	// debits the viewer and decrements the seat counter. A missing
	// viewer, movie or cinema comes back as a *repository.NotFoundError;
	// everything the domain can refuse (no schedule link, under age,
	// seats, funds) comes back inside the BookingResult with a nil error.
	Book(ctx context.Context, cinemaID int64, req *request.BookingRequest) (*response.BookingResult, error)
}

type bookingService struct {
	db          database.PgxIface
	repo        *repository.Repository
	log         *zap.Logger
	txTimeout   time.Duration
	lockTimeout time.Duration
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, cfg utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		db:          db,
		repo:        repo,
		log:         log.With(zap.String("service", "booking")),
		txTimeout:   time.Duration(cfg.TxTimeoutSeconds) * time.Second,
		lockTimeout: time.Duration(cfg.LockTimeoutMillis) * time.Millisecond,
	}
}

func (s *bookingService) Book(ctx context.Context, cinemaID int64, req *request.BookingRequest) (*response.BookingResult, error) {
	// Rejected before any unit of work opens.
	if req.Quantity <= 0 {
		return response.BookingFailure("quantity must be positive"), nil
	}

	if s.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.txTimeout)
		defer cancel()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	// Discards every write on any early return; no-op after commit.
	defer tx.Rollback(ctx)

	// Bound each row-lock wait so a contended booking fails fast with a
	// retryable error instead of queueing behind a long holder.
	if s.lockTimeout > 0 {
		lockStmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, lockStmt); err != nil {
			return nil, fmt.Errorf("set lock timeout: %w", err)
		}
	}

	// Lock acquisition order is fixed (viewer, then schedule entry) so
	// two concurrent bookings can never wait on each other in a cycle.
	viewer, err := s.repo.Viewer.FindByIDForUpdate(ctx, tx, req.ViewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, &repository.NotFoundError{Entity: "Viewer", ID: req.ViewerID}
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, &repository.NotFoundError{Entity: "Movie", ID: req.MovieID}
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaID)
	if err != nil {
		return nil, err
	}
	if cinema == nil {
		return nil, &repository.NotFoundError{Entity: "Cinema", ID: cinemaID}
	}

	entry, err := s.repo.Schedule.FindForUpdate(ctx, tx, cinemaID, req.MovieID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		// Cinema and movie both exist, they are just not linked: a
		// business failure, not a 404.
		return response.BookingFailure(MsgNotScheduled), nil
	}

	if !AllowedForAge(movie, viewer.Age) {
		return response.BookingFailure(fmt.Sprintf(
			"viewer age %d is below the age restriction of %d", viewer.Age, movie.AgeRestriction)), nil
	}

	if !HasSeats(entry.Seats, req.Quantity) {
		return response.BookingFailure(fmt.Sprintf(
			"not enough seats: %d requested, %d available", req.Quantity, entry.Seats)), nil
	}

	price, err := PriceForTickets(movie, req.Quantity)
	if err != nil {
		return response.BookingFailure(err.Error()), nil
	}

	if !CanAfford(viewer.Balance, price) {
		return response.BookingFailure(fmt.Sprintf(
			"insufficient balance: need %s, have %s", price.StringFixed(2), viewer.Balance.StringFixed(2))), nil
	}

	newBalance := viewer.Balance.Sub(price)
	remainingSeats := entry.Seats - req.Quantity

	if err := s.repo.Viewer.UpdateBalance(ctx, tx, viewer.ID, newBalance); err != nil {
		return nil, err
	}
	if err := s.repo.Schedule.UpdateSeats(ctx, tx, cinemaID, req.MovieID, remainingSeats); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	s.log.Info("Booking completed",
		zap.Int64("cinema_id", cinemaID),
		zap.Int64("viewer_id", viewer.ID),
		zap.Int64("movie_id", movie.ID),
		zap.Int("quantity", req.Quantity),
		zap.Int("remaining_seats", remainingSeats),
		zap.String("price", price.StringFixed(2)),
	)

	message := fmt.Sprintf("Booking success: %d ticket(s) for %s", req.Quantity, movie.Title)
	return response.BookingSuccess(message, remainingSeats, newBalance), nil
}
