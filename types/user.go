package types

import "time"

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Username is the unique display name chosen by the user.
	Username string `json:"username" db:"username"`

	// Email is the user's email address, used as the login credential.
	Email string `json:"email" db:"email"`

	// ProfileImage is the URL of the user's avatar image.
	ProfileImage string `json:"profileImage" db:"profile_image"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the credential-free view of a user attached to request
// contexts and embedded in book listings. It structurally has no password
// field, so it can never leak one.
type PublicUser struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	ProfileImage string `json:"profileImage" db:"profile_image"`
}

// Public returns the credential-free view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
	}
}
