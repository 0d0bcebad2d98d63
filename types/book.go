package types

import "time"

// Book represents a single book review entry.
type Book struct {
	// ID is the unique identifier of the book, assigned at creation.
	ID int `json:"id" db:"id"`

	// Title is the book's title.
	Title string `json:"title" db:"title"`

	// Caption is the reviewer's short comment on the book.
	Caption string `json:"caption" db:"caption"`

	// Rating is the reviewer's score for the book, from 1 to 5.
	Rating int `json:"rating" db:"rating"`

	// Image is the public URL of the uploaded cover image. It is set once
	// at creation and never changes; there is no update operation.
	Image string `json:"image" db:"image_url"`

	// ImageKey is the object-storage key of the cover image, kept so the
	// object can be removed when the book is deleted. It may be empty for
	// records created before keys were stored, in which case deletion
	// skips the storage call. Never exposed in API responses.
	ImageKey string `json:"-" db:"image_key"`

	// UserID is the identifier of the user who created the book.
	// Set once at creation, never reassigned.
	UserID int `json:"userId" db:"user_id"`

	// User is the author's public profile, populated only on the
	// paginated listing.
	User *PublicUser `json:"user,omitempty" db:"-"`

	// CreatedAt is the timestamp at which the book was created. It is the
	// sole sort key for listings (newest first).
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
