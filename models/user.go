package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on registration.
	UserID int64 `json:"id"`

	// Email is the unique email address used during login.
	Email string `json:"email"`

	// Username is the unique public handle of the user.
	// Minimum length is enforced at registration time.
	Username string `json:"username"`

	// Password carries the plain-text password of an incoming
	// registration or login request. It is never persisted and is
	// excluded from every response by the Profile projection.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored in place of the password.
	// It is not exposed via JSON and is used only at the persistence layer.
	PasswordHash string `json:"-"`

	// ProfileImage is the avatar URL derived deterministically from the
	// username at registration time.
	ProfileImage string `json:"profileImage"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the user that is safe to send
// to clients: identifier, username, email and avatar URL. Credential
// fields never appear in the projection.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:           u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

// Owner returns the reduced projection embedded into books on listing:
// username and avatar only.
func (u User) Owner() BookOwner {
	return BookOwner{
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
	}
}
