package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/utils"
	"github.com/bookworm-social/bookworm-server/models"
)

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingUser, ok := utils.GetActingUser(ctx)
	if !ok {
		log.Error().Msg("no acting user in request context")
		utils.WriteMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdBook, err := h.services.BookService.Create(ctx, actingUser, book)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("bookID", createdBook.BookID).Msg("book successfully created")

	utils.WriteJSON(w, createdBook, http.StatusCreated)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// bad pagination input falls back to defaults instead of erroring
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	response, err := h.services.BookService.List(ctx, page, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listOwnBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingUser, ok := utils.GetActingUser(ctx)
	if !ok {
		log.Error().Msg("no acting user in request context")
		utils.WriteMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	books, err := h.services.BookService.ListOwn(ctx, actingUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingUser, ok := utils.GetActingUser(ctx)
	if !ok {
		log.Error().Msg("no acting user in request context")
		utils.WriteMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid book id in path")
		utils.WriteMessage(w, "Book not found", http.StatusNotFound)
		return
	}

	if err := h.services.BookService.Delete(ctx, actingUser, bookID); err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("bookID", bookID).Msg("book successfully deleted")

	utils.WriteMessage(w, "Book removed", http.StatusOK)
}
