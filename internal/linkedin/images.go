package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// InitializeImageUpload starts the two-phase image upload. The response
// carries a pre-signed upload URL and the image URN the upload will be
// addressable by.
func (c *Client) InitializeImageUpload(ctx context.Context, owner string) (any, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, requiredArg("owner")
	}
	payload := map[string]any{
		"initializeUploadRequest": map[string]any{"owner": owner},
	}
	return c.do(ctx, http.MethodPost, "/rest/images?action=initializeUpload", versionImages, payload)
}

// UploadImageBinary performs phase two of the upload: a raw PUT of the
// file bytes to the pre-signed URL. The URL carries its own authorization,
// so the request deliberately skips the session headers. Local validation
// happens before any network call.
func (c *Client) UploadImageBinary(ctx context.Context, uploadURL, filePath string) (any, error) {
	uploadURL = strings.TrimSpace(uploadURL)
	if uploadURL == "" {
		return nil, requiredArg("upload_url")
	}
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return nil, InvalidArgumentError{Msg: fmt.Sprintf("file_path not found: %v", filePath)}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", filePath, err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = info.Size()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()
	return classify(resp)
}
