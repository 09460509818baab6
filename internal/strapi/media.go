// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	// Image decoders for dimension probing
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// mimeByExtension maps recognized image extensions to MIME types.
var mimeByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MimeTypeForFile returns the MIME type for a recognized image file name,
// or "" when the extension is not a supported image format.
func MimeTypeForFile(name string) string {
	return mimeByExtension[strings.ToLower(filepath.Ext(name))]
}

// uploadFileInfo is the metadata side-channel of the upload endpoint.
type uploadFileInfo struct {
	Name            string `json:"name"`
	AlternativeText string `json:"alternativeText,omitempty"`
}

// UploadFile uploads a local file to the CMS media library and returns
// the created media record. The file's pixel dimensions are probed
// locally and logged; the CMS derives its own metadata from the bytes.
func (c *Client) UploadFile(ctx context.Context, path, altText string) (*Media, error) {
	mimeType := MimeTypeForFile(path)
	if mimeType == "" {
		return nil, fmt.Errorf("unsupported media file %q", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening media file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat media file: %w", err)
	}

	if cfg, _, err := image.DecodeConfig(f); err == nil {
		c.logger.Debug("uploading image",
			"file", filepath.Base(path),
			"mime", mimeType,
			"size", stat.Size(),
			"width", cfg.Width,
			"height", cfg.Height)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding media file: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := createFormFile(mw, "files", filepath.Base(path), mimeType)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copying media file: %w", err)
	}

	info, err := json.Marshal(uploadFileInfo{Name: filepath.Base(path), AlternativeText: altText})
	if err != nil {
		return nil, fmt.Errorf("encoding fileInfo: %w", err)
	}
	if err := mw.WriteField("fileInfo", string(info)); err != nil {
		return nil, fmt.Errorf("writing fileInfo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST /api/upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	// The upload endpoint returns a bare array of created media records.
	var uploaded []Media
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	if len(uploaded) == 0 {
		return nil, fmt.Errorf("upload response contained no media records")
	}
	return &uploaded[0], nil
}

// createFormFile adds a file part with an explicit Content-Type
// (multipart.Writer.CreateFormFile hardcodes application/octet-stream).
func createFormFile(mw *multipart.Writer, field, filename, mimeType string) (io.Writer, error) {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", mimeType)
	return mw.CreatePart(h)
}
