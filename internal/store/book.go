package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bookworm-app/apiserver/types"
)

// BookRepository handles persistence for books.
type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, book types.Book) (types.Book, error) {
	book.CreatedAt = time.Now()

	const query = `
		INSERT INTO books (title, caption, rating, image_url, image_key, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Caption,
		book.Rating,
		book.Image,
		book.ImageKey,
		book.UserID,
		book.CreatedAt,
	).Scan(&book.ID); err != nil {
		return types.Book{}, err
	}

	return book, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id int) (types.Book, error) {
	const query = `
		SELECT id, title, caption, rating, image_url, image_key, user_id, created_at
		FROM books
		WHERE id = $1`
	var book types.Book
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Caption,
		&book.Rating,
		&book.Image,
		&book.ImageKey,
		&book.UserID,
		&book.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Book{}, ErrNotFound
		}
		return types.Book{}, err
	}
	return book, nil
}

// List returns one page of books, newest first, with the author's public
// profile joined in, plus the total number of books independent of paging.
func (r *BookRepository) List(ctx context.Context, offset, limit int) ([]types.Book, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 5
	}

	const countQuery = `SELECT COUNT(1) FROM books`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	const listQuery = `
		SELECT b.id, b.title, b.caption, b.rating, b.image_url, b.image_key, b.user_id, b.created_at,
			u.id, u.username, u.profile_image
		FROM books b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC
		OFFSET $1 LIMIT $2`
	rows, err := r.db.QueryContext(ctx, listQuery, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := make([]types.Book, 0, limit)
	for rows.Next() {
		var book types.Book
		var author types.PublicUser
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Caption,
			&book.Rating,
			&book.Image,
			&book.ImageKey,
			&book.UserID,
			&book.CreatedAt,
			&author.ID,
			&author.Username,
			&author.ProfileImage,
		); err != nil {
			return nil, 0, err
		}
		book.User = &author
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// ListByOwner returns all books created by the given user, newest first.
func (r *BookRepository) ListByOwner(ctx context.Context, userID int) ([]types.Book, error) {
	const query = `
		SELECT id, title, caption, rating, image_url, image_key, user_id, created_at
		FROM books
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]types.Book, 0)
	for rows.Next() {
		var book types.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Caption,
			&book.Rating,
			&book.Image,
			&book.ImageKey,
			&book.UserID,
			&book.CreatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *BookRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM books WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
