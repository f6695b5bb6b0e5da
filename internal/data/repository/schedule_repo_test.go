package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
	"github.com/rauanCheb33/oop-final-project/internal/data/repository"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.ScheduleRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repository.NewScheduleRepository(mock, zap.NewNop())
}

func TestScheduleRepository_Upsert(t *testing.T) {
	mock, repo := newScheduleRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (cinema_id, movie_id) DO UPDATE SET seats = EXCLUDED.seats`)).
		WithArgs(int64(3), int64(2), 50).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Upsert(context.Background(), &entity.ScheduleEntry{
		CinemaID: 3,
		MovieID:  2,
		Seats:    50,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_Delete_MissingRow(t *testing.T) {
	mock, repo := newScheduleRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cinema_movies WHERE cinema_id = $1 AND movie_id = $2`)).
		WithArgs(int64(3), int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 3, 42)

	assert.True(t, repository.IsNotFound(err))
	assert.EqualError(t, err, "ScheduleEntry with id=3:42 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_ListByCinema(t *testing.T) {
	mock, repo := newScheduleRepo(t)

	rows := pgxmock.NewRows([]string{"id", "title", "description", "duration_minutes", "age_restriction", "ticket_price", "seats"}).
		AddRow(int64(1), "Inception", "a heist inside dreams", 148, 16, decimal.RequireFromString("30"), 50).
		AddRow(int64(2), "Up", "", 96, 0, decimal.RequireFromString("12.50"), 80)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN movies m ON m.id = cm.movie_id`)).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	items, err := repo.ListByCinema(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Inception", items[0].Movie.Title)
	assert.Equal(t, 50, items[0].Seats)
	assert.Equal(t, "Up", items[1].Movie.Title)
	assert.Equal(t, 80, items[1].Seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_Find_NotFound(t *testing.T) {
	mock, repo := newScheduleRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cinema_id, movie_id, seats FROM cinema_movies WHERE cinema_id = $1 AND movie_id = $2`)).
		WithArgs(int64(3), int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"cinema_id", "movie_id", "seats"}))

	entry, err := repo.Find(context.Background(), 3, 42)

	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_FindForUpdate(t *testing.T) {
	mock, repo := newScheduleRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE cinema_id = $1 AND movie_id = $2 FOR UPDATE`)).
		WithArgs(int64(3), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"cinema_id", "movie_id", "seats"}).
			AddRow(int64(3), int64(2), 5))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	entry, err := repo.FindForUpdate(ctx, tx, 3, 2)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 5, entry.Seats)

	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_UpdateSeats(t *testing.T) {
	mock, repo := newScheduleRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE cinema_movies SET seats = $3 WHERE cinema_id = $1 AND movie_id = $2`)).
		WithArgs(int64(3), int64(2), 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	err = repo.UpdateSeats(ctx, tx, 3, 2, 2)
	require.NoError(t, err)

	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
