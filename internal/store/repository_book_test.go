// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bookworm Authors

package store

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookRepo(t *testing.T) (BookRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewBookRepository(newDBFromSQL(db), logger.Nop()), mock
}

func storedBook() models.Book {
	createdAt := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	return models.Book{
		BookID:    13,
		Title:     "Dune",
		Caption:   "Desert power",
		Rating:    5,
		Image:     "https://media.test/cover-1.png",
		UserID:    7,
		CreatedAt: createdAt,
	}
}

func bookRow(mock sqlmock.Sqlmock, book models.Book) *sqlmock.Rows {
	return mock.NewRows(bookColumns).
		AddRow(book.BookID, book.Title, book.Caption, book.Rating, book.Image, book.UserID, book.CreatedAt)
}

// ── CreateBook ───────────────────────────────────────────────────────────────

func TestBookRepository_CreateBook_Success(t *testing.T) {
	repo, mock := newBookRepo(t)

	want := storedBook()
	query, _, err := buildCreateBookQuery(want)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(want.Title, want.Caption, want.Rating, want.Image, want.UserID).
		WillReturnRows(bookRow(mock, want))

	got, err := repo.CreateBook(testContext(), models.Book{
		Title:   want.Title,
		Caption: want.Caption,
		Rating:  want.Rating,
		Image:   want.Image,
		UserID:  want.UserID,
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_CreateBook_QueryError(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildCreateBookQuery(storedBook())
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(sql.ErrConnDone)

	_, err = repo.CreateBook(testContext(), storedBook())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── FindBookByID ─────────────────────────────────────────────────────────────

func TestBookRepository_FindBookByID(t *testing.T) {
	repo, mock := newBookRepo(t)

	want := storedBook()
	query, _, err := buildFindBookByIDQuery(want.BookID)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(want.BookID).
		WillReturnRows(bookRow(mock, want))

	got, err := repo.FindBookByID(testContext(), want.BookID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_FindBookByID_NotFound(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildFindBookByIDQuery(404)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(404)).
		WillReturnRows(mock.NewRows(bookColumns))

	_, err = repo.FindBookByID(testContext(), 404)

	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListBooks ────────────────────────────────────────────────────────────────

func TestBookRepository_ListBooks_PopulatesOwner(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildListBooksQuery(0, 5)
	require.NoError(t, err)

	columns := []string{"book_id", "title", "caption", "rating", "image_url", "user_id", "created_at", "username", "profile_image"}
	createdAt := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)

	rows := mock.NewRows(columns).
		AddRow(int64(2), "Dune", "Desert power", 5, "https://media.test/2.png", int64(7), createdAt, "reader", "avatar-7").
		AddRow(int64(1), "Solaris", "Ocean", 4, "https://media.test/1.png", int64(8), createdAt.Add(-time.Hour), "lurker", "avatar-8")

	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	books, err := repo.ListBooks(testContext(), 0, 5)

	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, int64(2), books[0].BookID)
	require.NotNil(t, books[0].Owner)
	assert.Equal(t, "reader", books[0].Owner.Username)
	assert.Equal(t, "avatar-7", books[0].Owner.ProfileImage)

	require.NotNil(t, books[1].Owner)
	assert.Equal(t, "lurker", books[1].Owner.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_ListBooks_EmptyPage(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildListBooksQuery(100, 5)
	require.NoError(t, err)

	columns := []string{"book_id", "title", "caption", "rating", "image_url", "user_id", "created_at", "username", "profile_image"}
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(mock.NewRows(columns))

	books, err := repo.ListBooks(testContext(), 100, 5)

	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_ListBooks_QueryError(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildListBooksQuery(0, 5)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(sql.ErrConnDone)

	_, err = repo.ListBooks(testContext(), 0, 5)

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── CountBooks ───────────────────────────────────────────────────────────────

func TestBookRepository_CountBooks(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildCountBooksQuery()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(12)))

	total, err := repo.CountBooks(testContext())

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListBooksByUser ──────────────────────────────────────────────────────────

func TestBookRepository_ListBooksByUser(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildListBooksByUserQuery(7)
	require.NoError(t, err)

	book := storedBook()
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(7)).
		WillReturnRows(bookRow(mock, book))

	books, err := repo.ListBooksByUser(testContext(), 7)

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, book.BookID, books[0].BookID)
	assert.Nil(t, books[0].Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── DeleteBook ───────────────────────────────────────────────────────────────

func TestBookRepository_DeleteBook(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildDeleteBookQuery(13)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(int64(13)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteBook(testContext(), 13)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_DeleteBook_NothingDeleted(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildDeleteBookQuery(404)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteBook(testContext(), 404)

	assert.ErrorIs(t, err, ErrBookNotDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_DeleteBook_ExecError(t *testing.T) {
	repo, mock := newBookRepo(t)

	query, _, err := buildDeleteBookQuery(13)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).WillReturnError(sql.ErrConnDone)

	err = repo.DeleteBook(testContext(), 13)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBookNotDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
