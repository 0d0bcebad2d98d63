package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bookworm-app/apiserver/internal/services"
	"github.com/bookworm-app/apiserver/internal/store"
	"github.com/bookworm-app/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage  = 1
	defaultLimit = 5
	maxLimit     = 100

	msgInternalError = "Internal server error"
	msgBookNotFound  = "Book not found"
)

// BookService defines the book use-cases the HTTP layer depends on.
type BookService interface {
	Create(ctx context.Context, ownerID int, book types.Book, imagePayload string) (types.Book, error)
	List(ctx context.Context, offset, limit int) ([]types.Book, int, error)
	ListMine(ctx context.Context, ownerID int) ([]types.Book, error)
	Delete(ctx context.Context, callerID, bookID int) error
}

// BookHandler provides HTTP handlers for books.
type BookHandler struct {
	books    BookService
	validate *validator.Validate
}

// NewBookHandler constructs a handler with the provided service.
func NewBookHandler(books BookService) *BookHandler {
	return &BookHandler{
		books:    books,
		validate: validator.New(),
	}
}

// BookRouter registers book routes on the given router. The caller is
// expected to mount the auth middleware; every route here requires an
// authenticated user in the context.
func BookRouter(r chi.Router, books BookService) {
	handler := NewBookHandler(books)

	r.Post("/", handler.CreateBook)
	r.Get("/", handler.ListBooks)
	r.Get("/users", handler.ListMyBooks)
	r.Delete("/{bookID}", handler.DeleteBook)
}

// CreateBookRequest is the JSON payload for creating a book. Image is an
// inline-encoded cover image (base64 data URI).
type CreateBookRequest struct {
	Title   string `json:"title" validate:"required"`
	Caption string `json:"caption" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Image   string `json:"image" validate:"required"`
}

// CreateBookResponse wraps the created record.
type CreateBookResponse struct {
	NewBook types.Book `json:"newBook"`
}

// BookListResponse is the paginated list response payload.
type BookListResponse struct {
	Books       []types.Book `json:"books"`
	CurrentPage int          `json:"currentPage"`
	TotalBooks  int          `json:"totalBooks"`
	TotalPages  int          `json:"totalPages"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Please provide all fields")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Caption = strings.TrimSpace(req.Caption)
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	book := types.Book{
		Title:   req.Title,
		Caption: req.Caption,
		Rating:  req.Rating,
	}

	created, err := h.books.Create(r.Context(), caller.ID, book, req.Image)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusCreated, CreateBookResponse{NewBook: created})
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	page := parsePositiveInt(r.URL.Query().Get("page"), defaultPage)
	limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	books, total, err := h.books.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if books == nil {
		books = []types.Book{}
	}

	writeJSON(w, http.StatusOK, BookListResponse{
		Books:       books,
		CurrentPage: page,
		TotalBooks:  total,
		TotalPages:  (total + limit - 1) / limit,
	})
}

func (h *BookHandler) ListMyBooks(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	books, err := h.books.ListMine(r.Context(), caller.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if books == nil {
		books = []types.Book{}
	}

	writeJSON(w, http.StatusOK, books)
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	// A non-numeric id cannot name an existing book.
	id, err := strconv.Atoi(chi.URLParam(r, "bookID"))
	if err != nil || id < 1 {
		writeError(w, http.StatusNotFound, msgBookNotFound)
		return
	}

	if err := h.books.Delete(r.Context(), caller.ID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, msgBookNotFound)
		case errors.Is(err, services.ErrNotOwner):
			writeError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Book deleted successfully"})
}

// parsePositiveInt coerces a query parameter to a positive integer,
// falling back to def when the value is absent, malformed, or < 1.
func parsePositiveInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}
	return value
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Field() == "Rating" && fieldErr.Tag() != "required" {
				return "Rating must be between 1 and 5"
			}
		}
	}
	return "Please provide all fields"
}
