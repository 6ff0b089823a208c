package models

// UserProfile is the public projection of a user returned from the auth
// endpoints. It never carries credential fields.
type UserProfile struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// AuthResponse is the envelope returned by both register and login:
// a signed bearer token plus the public projection of the account.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// BookListResponse is the paginated books listing envelope.
type BookListResponse struct {
	// Books is the requested page of books, newest first.
	Books []Book `json:"books"`

	// CurrentPage echoes the page that was served.
	CurrentPage int `json:"currentPage"`

	// TotalBooks is the total number of books across all users.
	TotalBooks int64 `json:"totalBooks"`

	// TotalPages is ceil(TotalBooks / limit) for the requested limit.
	TotalPages int64 `json:"totalPages"`
}

// MessageResponse is the uniform JSON body used for confirmations and
// error responses.
type MessageResponse struct {
	Message string `json:"message"`
}
