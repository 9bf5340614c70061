package models

type UploadResponse struct {
	URLs []string `json:"urls"`
}
