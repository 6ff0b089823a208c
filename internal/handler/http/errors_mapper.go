package http

import (
	"errors"
	"net/http"

	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/service"
	"github.com/bookworm-social/bookworm-server/internal/store"
	"github.com/bookworm-social/bookworm-server/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrMissingFields:      http.StatusBadRequest,
	service.ErrPasswordTooShort:   http.StatusBadRequest,
	service.ErrUsernameTooShort:   http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotBookOwner:            http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrBookNotFound:          http.StatusNotFound,
	store.ErrBookNotDeleted:        http.StatusNotFound,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrImageUploadFailed:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message for each non-5xx sentinel.
// Internal errors never leak their text to the client.
var errorMessageMap = map[error]string{
	service.ErrMissingFields:      "Please fill in all fields",
	service.ErrPasswordTooShort:   "Password must be at least 6 characters",
	service.ErrUsernameTooShort:   "Username must be at least 3 characters",
	service.ErrInvalidCredentials: "Invalid credentials",

	service.ErrTokenIsExpiredOrInvalid: "Token is expired or invalid",
	service.ErrNotBookOwner:            "Unauthorized",

	store.ErrEmailAlreadyExists:    "Email already exists",
	store.ErrUsernameAlreadyExists: "Username already exists",
	store.ErrNoUserWasFound:        "Unauthorized",
	store.ErrBookNotFound:          "Book not found",
	store.ErrBookNotDeleted:        "Book not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates err into an HTTP status plus a JSON
// `{"message": ...}` body. Unmapped and 5xx errors are reported as a generic
// "Internal server error"; the real cause is logged.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		utils.WriteMessage(w, "Internal server error", status)
		return
	}

	message := http.StatusText(status)
	for target, text := range errorMessageMap {
		if errors.Is(err, target) {
			message = text
			break
		}
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, message, status)
}
