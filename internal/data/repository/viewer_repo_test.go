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

func newViewerRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.ViewerRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repository.NewViewerRepository(mock, zap.NewNop())
}

func TestViewerRepository_Create(t *testing.T) {
	mock, repo := newViewerRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO viewers (name, age, balance)`)).
		WithArgs("Alice", 30, decimal.NewFromInt(100)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	viewer := &entity.Viewer{Name: "Alice", Age: 30, Balance: decimal.NewFromInt(100)}
	err := repo.Create(context.Background(), viewer)

	require.NoError(t, err)
	assert.Equal(t, int64(7), viewer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newViewerRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, age, balance FROM viewers WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "balance"}))

	viewer, err := repo.FindByID(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, viewer, "absent row reads back as nil, nil")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerRepository_FindByIDForUpdate(t *testing.T) {
	mock, repo := newViewerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, age, balance FROM viewers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "balance"}).
			AddRow(int64(1), "Alice", 30, decimal.NewFromInt(100)))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	viewer, err := repo.FindByIDForUpdate(ctx, tx, 1)
	require.NoError(t, err)
	require.NotNil(t, viewer)
	assert.Equal(t, "Alice", viewer.Name)
	assert.True(t, viewer.Balance.Equal(decimal.NewFromInt(100)))

	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerRepository_UpdateBalance(t *testing.T) {
	mock, repo := newViewerRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE viewers SET balance = $2 WHERE id = $1`)).
		WithArgs(int64(1), decimal.NewFromInt(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	err = repo.UpdateBalance(ctx, tx, 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerRepository_UpdateBalance_MissingRow(t *testing.T) {
	mock, repo := newViewerRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE viewers SET balance = $2 WHERE id = $1`)).
		WithArgs(int64(404), decimal.NewFromInt(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	err = repo.UpdateBalance(ctx, tx, 404, decimal.NewFromInt(10))
	assert.True(t, repository.IsNotFound(err))

	require.NoError(t, tx.Rollback(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewerRepository_Delete_MissingRow(t *testing.T) {
	mock, repo := newViewerRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM viewers WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 404)

	assert.True(t, repository.IsNotFound(err))
	assert.EqualError(t, err, "Viewer with id=404 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
