// Package service contains the business logic of the bookworm server.
//
// Services sit between the HTTP handlers and the storage layer: they validate
// input, enforce ownership rules, coordinate with the external media service,
// and translate storage errors into domain sentinels that the transport layer
// maps onto HTTP status codes.
package service

import (
	"github.com/bookworm-social/bookworm-server/internal/adapter"
	"github.com/bookworm-social/bookworm-server/internal/config"
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/store"
)

// Services aggregates every business-logic service of the application.
type Services struct {
	AuthService
	BookService
}

// NewServices wires all services to the given repositories and media store.
func NewServices(repos *store.Repositories, mediaStore adapter.MediaStore, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, cfg, logger),
		BookService: NewBookService(repos.BookRepository, mediaStore, logger),
	}
}
