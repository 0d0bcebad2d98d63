package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bookworm-app/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs("Dune", "Great", 5, "http://img/books/k.jpg", "books/k.jpg", 7, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	created, err := repo.Create(context.Background(), types.Book{
		Title:    "Dune",
		Caption:  "Great",
		Rating:   5,
		Image:    "http://img/books/k.jpg",
		ImageKey: "books/k.jpg",
		UserID:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT id, title, caption, rating, image_url, image_key, user_id, created_at`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(1\) FROM books`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`FROM books b\s+JOIN users u ON u\.id = b\.user_id`).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "caption", "rating", "image_url", "image_key", "user_id", "created_at",
			"id", "username", "profile_image",
		}).
			AddRow(7, "Seventh", "c", 4, "http://img/7.jpg", "books/7.jpg", 1, now, 1, "author", "http://img/a.svg").
			AddRow(6, "Sixth", "c", 3, "http://img/6.jpg", "books/6.jpg", 1, now.Add(-time.Minute), 1, "author", "http://img/a.svg"))

	books, total, err := repo.List(context.Background(), 5, 5)

	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, books, 2)
	assert.Equal(t, 7, books[0].ID)
	require.NotNil(t, books[0].User)
	assert.Equal(t, "author", books[0].User.Username)
	assert.Equal(t, "http://img/a.svg", books[0].User.ProfileImage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM books`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM books b`).
		WithArgs(0, 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "caption", "rating", "image_url", "image_key", "user_id", "created_at",
			"id", "username", "profile_image",
		}))

	books, total, err := repo.List(context.Background(), 0, 5)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, books)
	assert.NotNil(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	now := time.Now()
	mock.ExpectQuery(`WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "caption", "rating", "image_url", "image_key", "user_id", "created_at",
		}).AddRow(2, "Second", "c", 5, "http://img/2.jpg", "books/2.jpg", 7, now))

	books, err := repo.ListByOwner(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 7, books[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Delete_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	mock.ExpectExec(`DELETE FROM books`).
		WithArgs(3).
		WillReturnError(errors.New("connection reset"))

	assert.Error(t, repo.Delete(context.Background(), 3))
}
