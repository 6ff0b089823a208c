package models

import "time"

// Book is a single review entry: a title, a short caption, a rating and a
// hosted cover image, owned by exactly one user. Books are created and
// deleted but never updated in place.
type Book struct {
	// BookID is the database-assigned identifier of the book.
	BookID int64 `json:"id"`

	// Title of the reviewed book.
	Title string `json:"title"`

	// Caption is the short review text.
	Caption string `json:"caption"`

	// Rating is the review score given by the owner.
	Rating int `json:"rating"`

	// Image is the hosted cover image URL returned by the media store.
	Image string `json:"image"`

	// UserID references the owning user. Set at creation, never reassigned.
	UserID int64 `json:"userId"`

	// Owner is the expanded public projection of the owning user.
	// Populated only on the paginated listing; nil elsewhere.
	Owner *BookOwner `json:"user,omitempty"`

	// CreatedAt is the database-assigned creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookOwner is the reduced user projection attached to books in listings.
type BookOwner struct {
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
}
