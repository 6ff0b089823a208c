// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bookworm Authors

// Package adapter provides transport-layer abstractions for communicating
// with external services.
//
// The primary abstraction is [MediaStore], which decouples the service layer
// from the image hosting provider. The package ships an HTTP/REST
// implementation ([NewHTTPMediaAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/bookworm-social/bookworm-server/models"
)

// MediaStore defines communication with the external image hosting service.
// Implementations are responsible for serialisation, credential management,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type MediaStore interface {
	// Upload sends the raw image payload (a base64 data URI as received from
	// the client) to the media service and returns the hosted image
	// descriptor: a stable public URL plus the public ID needed for later
	// deletion. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Upload(ctx context.Context, image string) (models.UploadedImage, error)

	// Destroy deletes the hosted image identified by publicID. Returns an
	// error if the request fails or the server responds with a non-2xx
	// status. Deleting an already-absent image is the provider's concern;
	// callers treat Destroy as best-effort.
	Destroy(ctx context.Context, publicID string) error

	// Hosts reports whether imageURL points at this media service. Used to
	// decide whether a stored image needs external cleanup on delete.
	Hosts(imageURL string) bool
}
