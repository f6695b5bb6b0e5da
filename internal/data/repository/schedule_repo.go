package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
	"github.com/rauanCheb33/oop-final-project/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScheduleRepository interface {
	// Upsert inserts the (cinema, movie) seat counter or replaces the
	// seat count if the pairing already exists.
	Upsert(ctx context.Context, entry *entity.ScheduleEntry) error
	Delete(ctx context.Context, cinemaID, movieID int64) error
	ListByCinema(ctx context.Context, cinemaID int64) ([]*entity.ScheduleItem, error)
	Find(ctx context.Context, cinemaID, movieID int64) (*entity.ScheduleEntry, error)

	// FindForUpdate reads the seat counter with an exclusive row lock
	// held until tx ends. UpdateSeats writes through the same tx.
	FindForUpdate(ctx context.Context, tx pgx.Tx, cinemaID, movieID int64) (*entity.ScheduleEntry, error)
	UpdateSeats(ctx context.Context, tx pgx.Tx, cinemaID, movieID int64, seats int) error
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

func (r *scheduleRepository) Upsert(ctx context.Context, entry *entity.ScheduleEntry) error {
	query := `
		INSERT INTO cinema_movies (cinema_id, movie_id, seats)
		VALUES ($1, $2, $3)
		ON CONFLICT (cinema_id, movie_id) DO UPDATE SET seats = EXCLUDED.seats
	`

	_, err := r.db.Exec(ctx, query, entry.CinemaID, entry.MovieID, entry.Seats)
	if err != nil {
		r.log.Error("Failed to upsert schedule entry",
			zap.Error(err),
			zap.Int64("cinema_id", entry.CinemaID),
			zap.Int64("movie_id", entry.MovieID),
		)
		return fmt.Errorf("upsert schedule entry cinema %d movie %d: %w",
			entry.CinemaID, entry.MovieID, err)
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, cinemaID, movieID int64) error {
	query := `DELETE FROM cinema_movies WHERE cinema_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, cinemaID, movieID)
	if err != nil {
		r.log.Error("Failed to delete schedule entry",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete schedule entry cinema %d movie %d: %w", cinemaID, movieID, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "ScheduleEntry", ID: fmt.Sprintf("%d:%d", cinemaID, movieID)}
	}

	r.log.Info("Schedule entry deleted",
		zap.Int64("cinema_id", cinemaID),
		zap.Int64("movie_id", movieID),
	)
	return nil
}

func (r *scheduleRepository) ListByCinema(ctx context.Context, cinemaID int64) ([]*entity.ScheduleItem, error) {
	query := `
		SELECT m.id, m.title, m.description, m.duration_minutes, m.age_restriction, m.ticket_price, cm.seats
		FROM cinema_movies cm
		JOIN movies m ON m.id = cm.movie_id
		WHERE cm.cinema_id = $1
		ORDER BY m.id
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to list cinema schedule",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("list schedule of cinema %d: %w", cinemaID, err)
	}
	defer rows.Close()

	var items []*entity.ScheduleItem
	for rows.Next() {
		var item entity.ScheduleItem
		err := rows.Scan(
			&item.Movie.ID,
			&item.Movie.Title,
			&item.Movie.Description,
			&item.Movie.DurationMinutes,
			&item.Movie.AgeRestriction,
			&item.Movie.TicketPrice,
			&item.Seats,
		)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate schedule rows: %w", err)
	}

	return items, nil
}

func (r *scheduleRepository) Find(ctx context.Context, cinemaID, movieID int64) (*entity.ScheduleEntry, error) {
	query := `SELECT cinema_id, movie_id, seats FROM cinema_movies WHERE cinema_id = $1 AND movie_id = $2`

	var entry entity.ScheduleEntry
	err := r.db.QueryRow(ctx, query, cinemaID, movieID).Scan(
		&entry.CinemaID,
		&entry.MovieID,
		&entry.Seats,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule entry",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find schedule entry cinema %d movie %d: %w", cinemaID, movieID, err)
	}

	return &entry, nil
}

func (r *scheduleRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, cinemaID, movieID int64) (*entity.ScheduleEntry, error) {
	query := `SELECT cinema_id, movie_id, seats FROM cinema_movies WHERE cinema_id = $1 AND movie_id = $2 FOR UPDATE`

	var entry entity.ScheduleEntry
	err := tx.QueryRow(ctx, query, cinemaID, movieID).Scan(
		&entry.CinemaID,
		&entry.MovieID,
		&entry.Seats,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock schedule row",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("lock schedule entry cinema %d movie %d: %w", cinemaID, movieID, err)
	}

	return &entry, nil
}

func (r *scheduleRepository) UpdateSeats(ctx context.Context, tx pgx.Tx, cinemaID, movieID int64, seats int) error {
	query := `UPDATE cinema_movies SET seats = $3 WHERE cinema_id = $1 AND movie_id = $2`

	result, err := tx.Exec(ctx, query, cinemaID, movieID, seats)
	if err != nil {
		r.log.Error("Failed to update seats",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("update seats cinema %d movie %d: %w", cinemaID, movieID, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "ScheduleEntry", ID: fmt.Sprintf("%d:%d", cinemaID, movieID)}
	}

	return nil
}
