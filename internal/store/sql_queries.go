package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/bookworm-social/bookworm-server/models"
)

const (
	createUser = `INSERT INTO users (email, username, password_hash, profile_image)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, username, password_hash, profile_image, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, profile_image, created_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT user_id, email, username, password_hash, profile_image, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, email, username, password_hash, profile_image, created_at
    FROM users
    WHERE user_id = $1;`
)

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// bookColumns is the canonical column list scanned into a models.Book.
var bookColumns = []string{"book_id", "title", "caption", "rating", "image_url", "user_id", "created_at"}

func buildCreateBookQuery(book models.Book) (string, []any, error) {
	return psql.Insert("books").
		Columns("title", "caption", "rating", "image_url", "user_id").
		Values(book.Title, book.Caption, book.Rating, book.Image, book.UserID).
		Suffix("RETURNING book_id, title, caption, rating, image_url, user_id, created_at").
		ToSql()
}

func buildFindBookByIDQuery(bookID int64) (string, []any, error) {
	return psql.Select(bookColumns...).
		From("books").
		Where(squirrel.Eq{"book_id": bookID}).
		ToSql()
}

// buildListBooksQuery selects one page of books across all users, newest
// first, joined with the users table so each row carries the owner's
// username and avatar.
func buildListBooksQuery(offset, limit uint64) (string, []any, error) {
	return psql.Select(
		"b.book_id", "b.title", "b.caption", "b.rating", "b.image_url",
		"b.user_id", "b.created_at", "u.username", "u.profile_image").
		From("books b").
		Join("users u ON u.user_id = b.user_id").
		OrderBy("b.created_at DESC", "b.book_id DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
}

func buildCountBooksQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").From("books").ToSql()
}

func buildListBooksByUserQuery(userID int64) (string, []any, error) {
	return psql.Select(bookColumns...).
		From("books").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "book_id DESC").
		ToSql()
}

func buildDeleteBookQuery(bookID int64) (string, []any, error) {
	return psql.Delete("books").
		Where(squirrel.Eq{"book_id": bookID}).
		ToSql()
}
