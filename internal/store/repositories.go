package store

import (
	"github.com/bookworm-social/bookworm-server/internal/logger"
)

// Repositories bundles every persistence-layer implementation behind its
// interface, ready to be injected into the service layer.
type Repositories struct {
	UserRepository UserRepository
	BookRepository BookRepository
}

// NewRepositories wires all repositories to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		BookRepository: NewBookRepository(db, logger),
	}
}
