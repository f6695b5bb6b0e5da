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

type CinemaRepository interface {
	Create(ctx context.Context, cinema *entity.Cinema) error
	FindByID(ctx context.Context, id int64) (*entity.Cinema, error)
	FindAll(ctx context.Context) ([]*entity.Cinema, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Delete(ctx context.Context, id int64) error
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	query := `
		INSERT INTO cinemas (name, city, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		cinema.Name,
		cinema.City,
		cinema.Address,
	).Scan(&cinema.ID)

	if err != nil {
		r.log.Error("Failed to create cinema",
			zap.Error(err),
			zap.String("name", cinema.Name),
		)
		return fmt.Errorf("create cinema: %w", err)
	}

	return nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id int64) (*entity.Cinema, error) {
	query := `SELECT id, name, city, address FROM cinemas WHERE id = $1`

	var cinema entity.Cinema
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.City,
		&cinema.Address,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema by ID",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return nil, fmt.Errorf("find cinema %d: %w", id, err)
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context) ([]*entity.Cinema, error) {
	query := `SELECT id, name, city, address FROM cinemas ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all cinemas", zap.Error(err))
		return nil, fmt.Errorf("find cinemas: %w", err)
	}
	defer rows.Close()

	var cinemas []*entity.Cinema
	for rows.Next() {
		var cinema entity.Cinema
		err := rows.Scan(
			&cinema.ID,
			&cinema.Name,
			&cinema.City,
			&cinema.Address,
		)
		if err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema row: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cinema rows: %w", err)
	}

	return cinemas, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	query := `UPDATE cinemas SET name = $2, city = $3, address = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		cinema.ID,
		cinema.Name,
		cinema.City,
		cinema.Address,
	)

	if err != nil {
		r.log.Error("Failed to update cinema",
			zap.Error(err),
			zap.Int64("cinema_id", cinema.ID),
		)
		return fmt.Errorf("update cinema %d: %w", cinema.ID, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "Cinema", ID: cinema.ID}
	}

	return nil
}

func (r *cinemaRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cinemas WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete cinema",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return fmt.Errorf("delete cinema %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "Cinema", ID: id}
	}

	r.log.Info("Cinema deleted", zap.Int64("cinema_id", id))
	return nil
}
