package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/arunkarthik0712/travel-planner-backend/pkg/storage"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"go.uber.org/zap"
)

type fakeUploader struct {
	uploaded []string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, file storage.Upload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, file.Filename)
	return "https://cdn.example.com/" + file.Filename, nil
}

func png(name string) storage.Upload {
	return storage.Upload{Filename: name, ContentType: "image/png", Data: []byte("png")}
}

func TestUploadValidation(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewUploadService(uploader, utils.NewValidator(), zap.NewNop())
	ctx := context.Background()

	cases := map[string][]storage.Upload{
		"none":      nil,
		"too many":  {png("1"), png("2"), png("3"), png("4")},
		"too large": {{Filename: "big.png", ContentType: "image/png", Data: bytes.Repeat([]byte{1}, MaxUploadFileSize+1)}},
		"not image": {{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("pdf")}},
	}
	for name, files := range cases {
		if _, err := svc.Upload(ctx, files); !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
	if len(uploader.uploaded) != 0 {
		t.Fatalf("nothing should be uploaded")
	}
}

func TestUploadReturnsURLsInOrder(t *testing.T) {
	svc := NewUploadService(&fakeUploader{}, utils.NewValidator(), zap.NewNop())

	urls, err := svc.Upload(context.Background(), []storage.Upload{png("a.png"), png("b.png")})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://cdn.example.com/a.png" || urls[1] != "https://cdn.example.com/b.png" {
		t.Fatalf("unexpected urls %v", urls)
	}
}

func TestUploadBackendFailure(t *testing.T) {
	svc := NewUploadService(&fakeUploader{err: errors.New("503")}, utils.NewValidator(), zap.NewNop())
	_, err := svc.Upload(context.Background(), []storage.Upload{png("a.png")})
	var serverErr ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected server error, got %v", err)
	}
}
