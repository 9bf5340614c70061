package handler

import (
	"io"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/storage"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload accepts up to three images in the "file" field.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, service.ValidationError{Msg: "No files uploaded", Err: err})
	}

	headers := form.File["file"]
	if len(headers) > service.MaxUploadFiles {
		return respondError(c, service.ValidationError{Msg: "At most 3 files can be uploaded"})
	}

	files := make([]storage.Upload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > service.MaxUploadFileSize {
			return respondError(c, service.ValidationError{Msg: fh.Filename + " exceeds the 10MB limit"})
		}
		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return respondError(c, err)
		}
		files = append(files, storage.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	urls, err := h.uploadService.Upload(c.UserContext(), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(models.UploadResponse{URLs: urls}, "Images uploaded"))
}
