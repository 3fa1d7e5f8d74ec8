package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// UploadResult is the answer of POST /uploads.
type UploadResult struct {
	Path     string `json:"path"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Upload streams a file to the API upload endpoint as multipart/form-data
// and returns the stored path.
func (c *Client) Upload(ctx context.Context, kind, filename, contentType string, r io.Reader) (*UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeUpload(mw, kind, filename, contentType, r)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/uploads", nil, pr)
	if err != nil {
		_ = pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out UploadResult
	if err := c.send(req, "uploads", &out); err != nil {
		_ = pr.Close()
		return nil, err
	}
	if out.Path == "" {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}

func writeUpload(mw *multipart.Writer, kind, filename, contentType string, r io.Reader) error {
	if kind != "" {
		if err := mw.WriteField("type", kind); err != nil {
			return err
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, r)
	return err
}
