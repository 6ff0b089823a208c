package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// It manages the "books" table and the listing JOIN against "users".
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new book record and returns the fully populated
// [models.Book] with server-assigned fields (BookID, CreatedAt).
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookQuery(book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error building insert query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Book
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&saved.BookID, &saved.Title, &saved.Caption, &saved.Rating, &saved.Image, &saved.UserID, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindBookByID retrieves a single book by its identifier.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrBookNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookRepository) FindBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindBookByIDQuery(bookID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error building select query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&book.BookID, &book.Title, &book.Caption, &book.Rating, &book.Image, &book.UserID, &book.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return book, nil
}

// ListBooks returns one page of books across all users ordered by creation
// time descending. Every returned book carries the owner projection
// (username and avatar) populated from the JOIN with the users table.
//
// Requesting a page past the end of the collection yields an empty slice,
// not an error.
func (r *bookRepository) ListBooks(ctx context.Context, offset, limit uint64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, limit)
	for rows.Next() {
		var book models.Book
		var owner models.BookOwner

		if err := rows.Scan(&book.BookID, &book.Title, &book.Caption, &book.Rating, &book.Image,
			&book.UserID, &book.CreatedAt, &owner.Username, &owner.ProfileImage); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		book.Owner = &owner
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// CountBooks returns the total number of books across all users.
func (r *bookRepository) CountBooks(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountBooksQuery()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CountBooks").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*bookRepository.CountBooks").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return total, nil
}

// ListBooksByUser returns every book owned by userID, newest first,
// without pagination. The owner projection is left nil; the caller already
// knows whose books these are.
func (r *bookRepository) ListBooksByUser(ctx context.Context, userID int64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooksByUser").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooksByUser").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.BookID, &book.Title, &book.Caption, &book.Rating, &book.Image, &book.UserID, &book.CreatedAt); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListBooksByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooksByUser").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// DeleteBook removes the book record with the given identifier.
//
// Error handling:
//   - zero affected rows → [ErrBookNotDeleted] (the record was already gone,
//     e.g. a concurrent delete won the race).
//   - Any driver-level error → wrapped as "unexpected DB error".
func (r *bookRepository) DeleteBook(ctx context.Context, bookID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookQuery(bookID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error executing delete query")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBookNotDeleted
	}

	return nil
}
