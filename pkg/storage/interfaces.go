package storage

import "context"

// Upload is a single image file taken from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageUploader stores an image and returns the public URL it is served from.
type ImageUploader interface {
	Upload(ctx context.Context, file Upload) (string, error)
}
