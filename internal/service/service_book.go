package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookworm-social/bookworm-server/internal/adapter"
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/store"
	"github.com/bookworm-social/bookworm-server/models"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// bookService is the concrete implementation of BookService.
// It coordinates book persistence with cover image hosting on the external
// media service.
type bookService struct {
	bookRepository store.BookRepository
	mediaStore     adapter.MediaStore
	logger         *logger.Logger
}

// NewBookService constructs a new BookService wired to the given
// BookRepository and MediaStore.
func NewBookService(bookRepository store.BookRepository, mediaStore adapter.MediaStore, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		mediaStore:     mediaStore,
		logger:         logger,
	}
}

// Create validates the submitted book, uploads its cover image to the media
// service, and persists the record for the acting user.
//
// The Image field of the submitted book carries the raw image payload (a data
// URI); the persisted record stores the hosted URL returned by the media
// service instead.
//
// Returns the persisted book or:
//   - ErrMissingFields if title, caption, rating, or image is absent.
//   - ErrImageUploadFailed (wrapping the media error) if hosting the image
//     fails. Nothing is persisted in that case.
//   - A wrapped storage error if persistence fails.
func (b *bookService) Create(ctx context.Context, actingUser models.User, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if book.Title == "" || book.Caption == "" || book.Rating == 0 || book.Image == "" {
		log.Error().Str("title", book.Title).Msg("invalid book data provided")
		return models.Book{}, ErrMissingFields
	}

	uploadedImage, err := b.mediaStore.Upload(ctx, book.Image)
	if err != nil {
		log.Err(err).Str("title", book.Title).Msg("cover image upload ended with error")
		return models.Book{}, fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
	}

	book.Image = uploadedImage.SecureURL
	book.UserID = actingUser.UserID

	createdBook, err := b.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("title", book.Title).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// List returns one page of the shared feed, newest books first, each entry
// carrying its owner's public profile.
//
// Non-positive page or limit values fall back to defaultPage and defaultLimit.
// The returned BookListResponse reports the requested page number, the total
// number of books across all users, and the total page count derived from the
// effective limit.
func (b *bookService) List(ctx context.Context, page, limit int) (models.BookListResponse, error) {
	log := logger.FromContext(ctx)

	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	offset := uint64(page-1) * uint64(limit)

	books, err := b.bookRepository.ListBooks(ctx, offset, uint64(limit))
	if err != nil {
		log.Err(err).Int("page", page).Msg("book listing ended with error")
		return models.BookListResponse{}, fmt.Errorf("book listing ended with error: %w", err)
	}

	totalBooks, err := b.bookRepository.CountBooks(ctx)
	if err != nil {
		log.Err(err).Msg("book counting ended with error")
		return models.BookListResponse{}, fmt.Errorf("book counting ended with error: %w", err)
	}

	totalPages := (totalBooks + int64(limit) - 1) / int64(limit)

	return models.BookListResponse{
		Books:       books,
		CurrentPage: page,
		TotalBooks:  totalBooks,
		TotalPages:  totalPages,
	}, nil
}

// ListOwn returns every book belonging to the acting user, newest first,
// without pagination.
func (b *bookService) ListOwn(ctx context.Context, actingUser models.User) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := b.bookRepository.ListBooksByUser(ctx, actingUser.UserID)
	if err != nil {
		log.Err(err).Int64("userID", actingUser.UserID).Msg("user book listing ended with error")
		return nil, fmt.Errorf("user book listing ended with error: %w", err)
	}

	return books, nil
}

// Delete removes a book owned by the acting user.
//
// If the book's cover image is hosted on the configured media service, Delete
// asks the service to destroy it first. A failed destroy is logged and
// otherwise ignored: the database record is removed regardless, so the worst
// case is an orphaned image, never a dangling book.
//
// Returns nil on success or:
//   - store.ErrBookNotFound if no book has the given ID.
//   - ErrNotBookOwner if the book belongs to another user.
//   - store.ErrBookNotDeleted / a wrapped storage error if removal fails.
func (b *bookService) Delete(ctx context.Context, actingUser models.User, bookID int64) error {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.FindBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return err
		}

		log.Err(err).Int64("bookID", bookID).Msg("book search ended with error")
		return fmt.Errorf("book search ended with error: %w", err)
	}

	if book.UserID != actingUser.UserID {
		log.Debug().Int64("bookID", bookID).Int64("userID", actingUser.UserID).Msg("delete attempt by non-owner")
		return ErrNotBookOwner
	}

	if b.mediaStore.Hosts(book.Image) {
		publicID := adapter.PublicIDFromURL(book.Image)
		if err := b.mediaStore.Destroy(ctx, publicID); err != nil {
			// orphaned image is acceptable, a dangling book record is not
			log.Err(err).Str("publicID", publicID).Msg("cover image destroy ended with error")
		}
	}

	if err := b.bookRepository.DeleteBook(ctx, bookID); err != nil {
		if errors.Is(err, store.ErrBookNotDeleted) {
			return err
		}

		log.Err(err).Int64("bookID", bookID).Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}
