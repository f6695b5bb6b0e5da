package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
	"github.com/rauanCheb33/oop-final-project/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ViewerRepository interface {
	Create(ctx context.Context, viewer *entity.Viewer) error
	FindByID(ctx context.Context, id int64) (*entity.Viewer, error)
	FindAll(ctx context.Context) ([]*entity.Viewer, error)
	Update(ctx context.Context, viewer *entity.Viewer) error
	Delete(ctx context.Context, id int64) error

	// FindByIDForUpdate reads the viewer row with an exclusive row lock
	// held until tx commits or rolls back. UpdateBalance writes inside
	// the same tx; it never opens its own transactional boundary.
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*entity.Viewer, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error
}

type viewerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewViewerRepository(db database.PgxIface, log *zap.Logger) ViewerRepository {
	return &viewerRepository{
		db:  db,
		log: log.With(zap.String("repository", "viewer")),
	}
}

func (r *viewerRepository) Create(ctx context.Context, viewer *entity.Viewer) error {
	query := `
		INSERT INTO viewers (name, age, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		viewer.Name,
		viewer.Age,
		viewer.Balance,
	).Scan(&viewer.ID)

	if err != nil {
		r.log.Error("Failed to create viewer",
			zap.Error(err),
			zap.String("name", viewer.Name),
		)
		return fmt.Errorf("create viewer: %w", err)
	}

	return nil
}

func (r *viewerRepository) FindByID(ctx context.Context, id int64) (*entity.Viewer, error) {
	query := `SELECT id, name, age, balance FROM viewers WHERE id = $1`

	var viewer entity.Viewer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&viewer.ID,
		&viewer.Name,
		&viewer.Age,
		&viewer.Balance,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find viewer by ID",
			zap.Error(err),
			zap.Int64("viewer_id", id),
		)
		return nil, fmt.Errorf("find viewer %d: %w", id, err)
	}

	return &viewer, nil
}

func (r *viewerRepository) FindAll(ctx context.Context) ([]*entity.Viewer, error) {
	query := `SELECT id, name, age, balance FROM viewers ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all viewers", zap.Error(err))
		return nil, fmt.Errorf("find viewers: %w", err)
	}
	defer rows.Close()

	var viewers []*entity.Viewer
	for rows.Next() {
		var viewer entity.Viewer
		err := rows.Scan(
			&viewer.ID,
			&viewer.Name,
			&viewer.Age,
			&viewer.Balance,
		)
		if err != nil {
			r.log.Error("Failed to scan viewer row", zap.Error(err))
			return nil, fmt.Errorf("scan viewer row: %w", err)
		}
		viewers = append(viewers, &viewer)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate viewer rows: %w", err)
	}

	return viewers, nil
}

func (r *viewerRepository) Update(ctx context.Context, viewer *entity.Viewer) error {
	query := `UPDATE viewers SET name = $2, age = $3, balance = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		viewer.ID,
		viewer.Name,
		viewer.Age,
		viewer.Balance,
	)

	if err != nil {
		r.log.Error("Failed to update viewer",
			zap.Error(err),
			zap.Int64("viewer_id", viewer.ID),
		)
		return fmt.Errorf("update viewer %d: %w", viewer.ID, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "Viewer", ID: viewer.ID}
	}

	return nil
}

func (r *viewerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM viewers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete viewer",
			zap.Error(err),
			zap.Int64("viewer_id", id),
		)
		return fmt.Errorf("delete viewer %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "Viewer", ID: id}
	}

	r.log.Info("Viewer deleted", zap.Int64("viewer_id", id))
	return nil
}

func (r *viewerRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*entity.Viewer, error) {
	query := `SELECT id, name, age, balance FROM viewers WHERE id = $1 FOR UPDATE`

	var viewer entity.Viewer
	err := tx.QueryRow(ctx, query, id).Scan(
		&viewer.ID,
		&viewer.Name,
		&viewer.Age,
		&viewer.Balance,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock viewer row",
			zap.Error(err),
			zap.Int64("viewer_id", id),
		)
		return nil, fmt.Errorf("lock viewer %d: %w", id, err)
	}

	return &viewer, nil
}

func (r *viewerRepository) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error {
	query := `UPDATE viewers SET balance = $2 WHERE id = $1`

	result, err := tx.Exec(ctx, query, id, balance)
	if err != nil {
		r.log.Error("Failed to update viewer balance",
			zap.Error(err),
			zap.Int64("viewer_id", id),
		)
		return fmt.Errorf("update balance of viewer %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "Viewer", ID: id}
	}

	return nil
}
