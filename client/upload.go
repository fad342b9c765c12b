package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

// Upload performs an authenticated multipart POST with one file part plus
// optional extra form fields. It follows the same 401 refresh-and-retry
// policy as Do; the multipart body is buffered so the replay is byte
// identical.
func (c *Client) Upload(ctx context.Context, path, fileName string, file io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}

	return c.upload(ctx, path, buf.Bytes(), writer.FormDataContentType(), out, false)
}

func (c *Client) upload(ctx context.Context, path string, body []byte, contentType string, out any, retried bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	if token := c.Tokens.GetAccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("upload request", zap.String("path", path), zap.Int("bytes", len(body)))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if !retried && c.refresh(ctx) {
			return c.upload(ctx, path, body, contentType, out, true)
		}
		if err := c.Tokens.ClearTokens(); err != nil {
			c.log.Warn("failed to clear tokens", zap.Error(err))
		}
		if c.OnSessionExpired != nil {
			c.OnSessionExpired()
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
