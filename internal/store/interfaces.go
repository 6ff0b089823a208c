package store

import (
	"context"

	"github.com/bookworm-social/bookworm-server/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// BookRepository is the persistence contract for book review entries.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	FindBookByID(ctx context.Context, bookID int64) (models.Book, error)

	// ListBooks returns one page of books across all users, newest first,
	// with the owner projection populated on every entry.
	ListBooks(ctx context.Context, offset, limit uint64) ([]models.Book, error)
	CountBooks(ctx context.Context) (int64, error)

	// ListBooksByUser returns all books owned by userID, newest first.
	ListBooksByUser(ctx context.Context, userID int64) ([]models.Book, error)

	DeleteBook(ctx context.Context, bookID int64) error
}
