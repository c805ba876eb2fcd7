package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// UploadRequest is a PDF submission. BL, Port, Notes and Date are
// optional form fields; the backend derives what it can from the file.
type UploadRequest struct {
	Path  string
	BL    string
	Port  string
	Notes string
	Date  string
}

// UploadResult is the minimum the backend reports for a created
// arrival. Items are NOT guaranteed here; callers must re-fetch the
// detail to see them.
type UploadResult struct {
	OK    bool   `json:"ok"`
	BL    string `json:"bl"`
	Date  string `json:"date"`
	Port  string `json:"port"`
	Notes string `json:"notes"`
	Items int    `json:"items"`
}

// Upload submits a PDF as multipart form data.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	var result UploadResult

	f, err := os.Open(req.Path)
	if err != nil {
		return result, err
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("pdf", filepath.Base(req.Path))
	if err != nil {
		return result, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return result, err
	}

	fields := map[string]string{
		"bl":    req.BL,
		"port":  req.Port,
		"notes": req.Notes,
		"date":  req.Date,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return result, err
		}
	}
	if err := w.Close(); err != nil {
		return result, err
	}

	err = c.fetchJSON(ctx, http.MethodPost, "/upload", w.FormDataContentType(), &body, &result)
	return result, err
}
