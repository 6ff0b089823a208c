package models

// UploadedImage is the hosted image descriptor returned by the media service
// after a successful upload.
type UploadedImage struct {
	// PublicID is the deletion handle assigned to the stored image.
	PublicID string `json:"public_id"`

	// SecureURL is the stable HTTPS URL the image is served from.
	SecureURL string `json:"secure_url"`
}

// UploadImageRequest is the payload sent to the media service upload endpoint.
type UploadImageRequest struct {
	// File is the raw image payload, a base64 data URI as received from
	// the client.
	File string `json:"file"`

	// PublicID is the server-chosen identifier under which to store the image.
	PublicID string `json:"public_id"`
}

// DestroyImageRequest is the payload sent to the media service destroy endpoint.
type DestroyImageRequest struct {
	PublicID string `json:"public_id"`
}
