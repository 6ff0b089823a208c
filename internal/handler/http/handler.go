package http

import (
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/service"
	"github.com/bookworm-social/bookworm-server/internal/store"
)

type Handler struct {
	services *service.Services

	// userRepository loads the acting user during authentication so that
	// handlers receive a full user record, not just a token's subject ID.
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewHandler(services *service.Services, userRepository store.UserRepository, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		userRepository: userRepository,
		logger:         logger,
	}
}
