package recharge

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupTxMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestAppend(t *testing.T) {
	repo, mock, close := setupTxMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (user_id, type, credits_added, status) VALUES ($1, $2, $3, $4)")).
		WithArgs("user-1", TypeRecharge, int64(100), StatusCompleted).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(ctx, "user-1", TypeRecharge, 100, StatusCompleted)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo, mock, close := setupTxMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, type, credits_added, status, created_at FROM transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")).
		WithArgs("user-1", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "credits_added", "status", "created_at"}).
			AddRow("tx-2", "user-1", TypeRecharge, 50, StatusCompleted, now).
			AddRow("tx-1", "user-1", TypeRecharge, 100, StatusCompleted, now.Add(-time.Hour)))

	entries, err := repo.ListByUser(ctx, "user-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "tx-2", entries[0].ID)
	require.Equal(t, int64(50), entries[0].CreditsAdded)
}

func TestListByUser_NegativeOffsetIsClamped(t *testing.T) {
	repo, mock, close := setupTxMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, type, credits_added, status, created_at FROM transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")).
		WithArgs("user-1", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "credits_added", "status", "created_at"}))

	_, err := repo.ListByUser(ctx, "user-1", 0, -7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByUser(t *testing.T) {
	repo, mock, close := setupTxMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.DeleteByUser(ctx, "user-1")
	require.NoError(t, err)
}

func TestTotalCreditsAdded(t *testing.T) {
	repo, mock, close := setupTxMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(credits_added), 0) FROM transactions WHERE type = $1")).
		WithArgs(TypeRecharge).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(500))

	total, err := repo.TotalCreditsAdded(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(500), total)
}
