package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCinemaService(t *testing.T) (pgxmock.PgxPoolIface, usecase.CinemaService) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	log := zap.NewNop()
	return mock, usecase.NewCinemaService(repository.NewRepository(mock, log), log)
}

func TestGetSchedule(t *testing.T) {
	mock, svc := newCinemaService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findCinemaSQL)).
		WithArgs(int64(3)).
		WillReturnRows(cinemaRows(3))
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN movies m ON m.id = cm.movie_id`)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "duration_minutes", "age_restriction", "ticket_price", "seats"}).
			AddRow(int64(2), "Inception", "a heist inside dreams", 148, 16, decimal.RequireFromString("30"), 50))

	items, err := svc.GetSchedule(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Inception", items[0].Movie.Title)
	assert.Equal(t, 50, items[0].Seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSchedule_CinemaNotFound(t *testing.T) {
	mock, svc := newCinemaService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findCinemaSQL)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	items, err := svc.GetSchedule(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, repository.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSchedule(t *testing.T) {
	mock, svc := newCinemaService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findCinemaSQL)).
		WithArgs(int64(3)).
		WillReturnRows(cinemaRows(3))
	mock.ExpectQuery(regexp.QuoteMeta(findMovieSQL)).
		WithArgs(int64(2)).
		WillReturnRows(movieRows(2, 16, "30"))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (cinema_id, movie_id) DO UPDATE SET seats = EXCLUDED.seats`)).
		WithArgs(int64(3), int64(2), 50).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := svc.UpsertSchedule(context.Background(), 3, &request.ScheduleUpsertRequest{
		MovieID: 2,
		Seats:   50,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSchedule_MovieNotFound(t *testing.T) {
	mock, svc := newCinemaService(t)

	mock.ExpectQuery(regexp.QuoteMeta(findCinemaSQL)).
		WithArgs(int64(3)).
		WillReturnRows(cinemaRows(3))
	mock.ExpectQuery(regexp.QuoteMeta(findMovieSQL)).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	err := svc.UpsertSchedule(context.Background(), 3, &request.ScheduleUpsertRequest{
		MovieID: 42,
		Seats:   50,
	})

	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
	assert.EqualError(t, err, "Movie with id=42 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
