package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupUserMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "created_at"}
}

func TestCreate(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, name, email, password_hash, role, created_at")).
		WithArgs("Ana", "ana@example.com", "hashed", "user").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("uuid-1", "Ana", "ana@example.com", "hashed", "user", now))

	created, err := repo.Create(ctx, "Ana", "ana@example.com", "hashed", "user")
	require.NoError(t, err)
	require.Equal(t, "uuid-1", created.ID)
	require.Equal(t, "ana@example.com", created.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("uuid-1", "Ana", "ana@example.com", "hashed", "user", now))

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, "uuid-1", found.ID)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindByID(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1")).
		WithArgs("uuid-1").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("uuid-1", "Ana", "ana@example.com", "hashed", "user", now))

	found, err := repo.FindByID(ctx, "uuid-1")
	require.NoError(t, err)
	require.Equal(t, "Ana", found.Name)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(ctx, "ana@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestDelete_MissingRowIsFine(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("uuid-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, "uuid-gone")
	require.NoError(t, err)
}

func TestCount(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, count)
}
