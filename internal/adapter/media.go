package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bookworm-social/bookworm-server/internal/config"
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/utils"
	"github.com/bookworm-social/bookworm-server/models"
)

type httpMediaAdapter struct {
	client *utils.HTTPClient

	host string
	ids  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPMediaAdapter constructs an HTTP/REST implementation of [MediaStore].
// It normalises and validates the base URL from mediaCfg.Address, configures
// the underlying HTTP client with the resolved base URL, the request timeout,
// and the API credentials as basic auth.
//
// Returns an error if mediaCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPMediaAdapter(mediaCfg config.Media, logger *logger.Logger) (MediaStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(mediaCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid media service address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(mediaCfg.RequestTimeout).
		SetBasicAuth(mediaCfg.APIKey, mediaCfg.APISecret)

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media service address: %w", err)
	}

	return &httpMediaAdapter{
		client: client,
		host:   parsed.Host,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [MediaStore]. It POSTs the image payload together with a
// freshly generated public ID to POST /v1/images/upload and decodes the
// hosted image descriptor from the response body.
func (h *httpMediaAdapter) Upload(ctx context.Context, image string) (models.UploadedImage, error) {
	var uploaded models.UploadedImage

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UploadImageRequest{File: image, PublicID: h.ids.Generate()}).
		SetResult(&uploaded).
		Post("/v1/images/upload")
	if err != nil {
		return models.UploadedImage{}, fmt.Errorf("media upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadedImage{}, err
	}

	if uploaded.SecureURL == "" {
		return models.UploadedImage{}, fmt.Errorf("media upload: empty secure_url in response")
	}

	return uploaded, nil
}

// Destroy implements [MediaStore]. It POSTs the public ID to
// POST /v1/images/destroy.
func (h *httpMediaAdapter) Destroy(ctx context.Context, publicID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DestroyImageRequest{PublicID: publicID}).
		Post("/v1/images/destroy")
	if err != nil {
		return fmt.Errorf("media destroy request: %w", err)
	}

	return mapHTTPError(resp)
}

// Hosts implements [MediaStore]. It reports whether imageURL's host matches
// the media service this adapter talks to.
func (h *httpMediaAdapter) Hosts(imageURL string) bool {
	u, err := url.Parse(imageURL)
	if err != nil {
		return false
	}

	return u.Host == h.host
}

// PublicIDFromURL derives the media-store deletion key from a hosted image
// URL: the path segment after the last "/", trimmed at the first ".".
//
// Example:
//
//	PublicIDFromURL("https://media.example.com/images/abc123.png") == "abc123"
func PublicIDFromURL(imageURL string) string {
	segment := imageURL
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.Index(segment, "."); idx >= 0 {
		segment = segment[:idx]
	}

	return segment
}
