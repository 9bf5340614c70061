package service

import (
	"context"
	"fmt"

	"github.com/arunkarthik0712/travel-planner-backend/pkg/storage"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"go.uber.org/zap"
)

const (
	MaxUploadFiles    = 3
	MaxUploadFileSize = 10 << 20
)

type UploadService struct {
	uploader  storage.ImageUploader
	validator *utils.Validator
	logger    *zap.Logger
}

func NewUploadService(uploader storage.ImageUploader, validator *utils.Validator, logger *zap.Logger) *UploadService {
	return &UploadService{
		uploader:  uploader,
		validator: validator,
		logger:    logger.Named("upload"),
	}
}

// Upload checks every file before sending any of them, then returns the
// public URLs in request order.
func (s *UploadService) Upload(ctx context.Context, files []storage.Upload) ([]string, error) {
	if len(files) == 0 {
		return nil, ValidationError{Msg: "No files uploaded"}
	}
	if len(files) > MaxUploadFiles {
		return nil, ValidationError{Msg: fmt.Sprintf("At most %d files can be uploaded", MaxUploadFiles)}
	}
	for _, f := range files {
		if len(f.Data) > MaxUploadFileSize {
			return nil, ValidationError{Msg: fmt.Sprintf("%s exceeds the 10MB limit", f.Filename)}
		}
		if err := s.validator.Var(f.ContentType, "supported_image"); err != nil {
			return nil, ValidationError{Msg: fmt.Sprintf("%s is not a supported image", f.Filename), Err: err}
		}
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.uploader.Upload(ctx, f)
		if err != nil {
			s.logger.Error("image upload failed", zap.String("file", f.Filename), zap.Error(err))
			return nil, ServerError{Msg: "Error uploading images", Err: err}
		}
		urls = append(urls, url)
	}
	return urls, nil
}
