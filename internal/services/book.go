package services

import (
	"context"
	"errors"

	"github.com/bookworm-app/apiserver/types"
	"github.com/sirupsen/logrus"
)

// ErrNotOwner is returned when a caller tries to delete a book they did
// not create.
var ErrNotOwner = errors.New("not the book owner")

const maxListLimit = 100

// BookRepository defines persistence operations for books.
type BookRepository interface {
	Create(ctx context.Context, book types.Book) (types.Book, error)
	GetByID(ctx context.Context, id int) (types.Book, error)
	List(ctx context.Context, offset, limit int) ([]types.Book, int, error)
	ListByOwner(ctx context.Context, userID int) ([]types.Book, error)
	Delete(ctx context.Context, id int) error
}

// ImageStore defines the image-hosting operations the book use-cases need.
type ImageStore interface {
	Upload(ctx context.Context, payload string) (url, key string, err error)
	Delete(ctx context.Context, key string) error
}

// BookService encapsulates book use-cases.
type BookService struct {
	repo   BookRepository
	images ImageStore
	logger *logrus.Logger
}

func NewBookService(repo BookRepository, images ImageStore, logger *logrus.Logger) *BookService {
	return &BookService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// Create uploads the cover image and then persists the book owned by
// ownerID. The record is written only after the upload succeeds, so a
// failed upload leaves no partial book behind.
func (s *BookService) Create(ctx context.Context, ownerID int, book types.Book, imagePayload string) (types.Book, error) {
	url, key, err := s.images.Upload(ctx, imagePayload)
	if err != nil {
		return types.Book{}, err
	}

	book.Image = url
	book.ImageKey = key
	book.UserID = ownerID

	return s.repo.Create(ctx, book)
}

func (s *BookService) List(ctx context.Context, offset, limit int) ([]types.Book, int, error) {
	if limit < 1 {
		limit = 5
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *BookService) ListMine(ctx context.Context, ownerID int) ([]types.Book, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *BookService) Get(ctx context.Context, id int) (types.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the caller's book and, best-effort, its stored cover
// image. An image-store failure is logged and swallowed; the record is
// deleted regardless. Returns store.ErrNotFound when the book does not
// exist and ErrNotOwner when callerID did not create it.
func (s *BookService) Delete(ctx context.Context, callerID, bookID int) error {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}

	if book.UserID != callerID {
		return ErrNotOwner
	}

	if book.ImageKey != "" {
		if err := s.images.Delete(ctx, book.ImageKey); err != nil {
			s.logger.WithFields(logrus.Fields{
				"book_id":   bookID,
				"image_key": book.ImageKey,
			}).WithError(err).Warn("failed to delete cover image, removing record anyway")
		}
	}

	return s.repo.Delete(ctx, bookID)
}
