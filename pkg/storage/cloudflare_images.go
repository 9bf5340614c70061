package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const VariantPublic = "public"

type CloudflareImages struct {
	accountID   string
	apiToken    string
	accountHash string
	baseURL     string
	client      *http.Client
}

type cloudflareImageResponse struct {
	Success bool `json:"success"`
	Result  struct {
		ID string `json:"id"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func NewCloudflareImages(accountID, token, accountHash string) *CloudflareImages {
	return &CloudflareImages{
		accountID:   accountID,
		apiToken:    token,
		accountHash: accountHash,
		baseURL:     "https://api.cloudflare.com/client/v4",
		client: &http.Client{
			Timeout: 2 * time.Minute,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *CloudflareImages) Upload(ctx context.Context, file Upload) (string, error) {
	if len(file.Data) == 0 {
		return "", fmt.Errorf("empty file %q", file.Filename)
	}

	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.WriteField("requireSignedURLs", "false"); err != nil {
		return "", fmt.Errorf("failed to add form field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/images/v1", c.baseURL, c.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, form)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("cloudflare returned non-OK status: %d, response: %s", resp.StatusCode, body)
	}

	var out cloudflareImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("cloudflare returned error: %v", out.Errors)
	}

	return c.VariantURL(out.Result.ID, VariantPublic), nil
}

func (c *CloudflareImages) VariantURL(imageID, variant string) string {
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/%s", c.accountHash, imageID, variant)
}
