package upload

import (
	"context"
	"io"

	"karirkit/internal/apiclient"
)

// Backend is the API upload endpoint. *apiclient.Client satisfies it.
type Backend interface {
	Upload(ctx context.Context, kind, filename, contentType string, r io.Reader) (*apiclient.UploadResult, error)
}

// APIUploader forwards checked files to the KarirKit API.
type APIUploader struct {
	backend  Backend
	maxBytes int64
}

func NewAPIUploader(b Backend, maxBytes int64) *APIUploader {
	return &APIUploader{backend: b, maxBytes: maxBytes}
}

func (u *APIUploader) Upload(ctx context.Context, f File) (*Result, error) {
	f, _, err := inspect(f, u.maxBytes)
	if err != nil {
		return nil, err
	}
	res, err := u.backend.Upload(ctx, string(f.Kind), f.Filename, f.ContentType, f.Body)
	if err != nil {
		return nil, err
	}
	ct := res.MimeType
	if ct == "" {
		ct = f.ContentType
	}
	return &Result{Path: res.Path, ContentType: ct, Size: res.Size, Filename: f.Filename}, nil
}
