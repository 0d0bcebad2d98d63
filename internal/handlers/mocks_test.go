package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/bookworm-app/apiserver/types"
	"github.com/stretchr/testify/mock"
)

func bodyReader(body string) io.Reader {
	return strings.NewReader(body)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByID(ctx context.Context, id int) (types.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockUserDirectory) GetByUsername(ctx context.Context, username string) (types.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockUserDirectory) GetByEmail(ctx context.Context, email string) (types.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockUserDirectory) Create(ctx context.Context, user types.User) (types.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(types.User), args.Error(1)
}

type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Create(ctx context.Context, ownerID int, book types.Book, imagePayload string) (types.Book, error) {
	args := m.Called(ctx, ownerID, book, imagePayload)
	return args.Get(0).(types.Book), args.Error(1)
}

func (m *MockBookService) List(ctx context.Context, offset, limit int) ([]types.Book, int, error) {
	args := m.Called(ctx, offset, limit)
	var books []types.Book
	if args.Get(0) != nil {
		books = args.Get(0).([]types.Book)
	}
	return books, args.Int(1), args.Error(2)
}

func (m *MockBookService) ListMine(ctx context.Context, ownerID int) ([]types.Book, error) {
	args := m.Called(ctx, ownerID)
	var books []types.Book
	if args.Get(0) != nil {
		books = args.Get(0).([]types.Book)
	}
	return books, args.Error(1)
}

func (m *MockBookService) Delete(ctx context.Context, callerID, bookID int) error {
	args := m.Called(ctx, callerID, bookID)
	return args.Error(0)
}
