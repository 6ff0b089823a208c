package service

import (
	"context"

	"github.com/bookworm-social/bookworm-server/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type BookService interface {
	Create(ctx context.Context, actingUser models.User, book models.Book) (models.Book, error)
	List(ctx context.Context, page, limit int) (models.BookListResponse, error)
	ListOwn(ctx context.Context, actingUser models.User) ([]models.Book, error)
	Delete(ctx context.Context, actingUser models.User, bookID int64) error
}
