package upload

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/google/uuid"

	"karirkit/internal/storage"
)

// KeyPrefix is the object key prefix, also the URL prefix the console serves
// stored objects under.
const KeyPrefix = "uploads"

// ObjectUploader streams checked files into object storage under
// uploads/<kind>/<uuid><ext>.
type ObjectUploader struct {
	store    storage.Storage
	maxBytes int64
	newID    func() string
}

func NewObjectUploader(s storage.Storage, maxBytes int64) *ObjectUploader {
	return &ObjectUploader{store: s, maxBytes: maxBytes, newID: uuid.NewString}
}

func (u *ObjectUploader) Upload(ctx context.Context, f File) (*Result, error) {
	f, ext, err := inspect(f, u.maxBytes)
	if err != nil {
		return nil, err
	}

	key := path.Join(KeyPrefix, string(f.Kind), u.newID()+ext)
	size := f.Size
	if size <= 0 {
		size = -1
	}
	info, err := u.store.Put(ctx, key, f.Body, storage.PutObjectOptions{
		Size:        size,
		ContentType: f.ContentType,
		Metadata:    map[string]string{"filename": f.Filename},
	})
	if err != nil {
		if errors.Is(err, ErrTooLarge) || exceeded(f.Body) {
			_ = u.store.Delete(context.WithoutCancel(ctx), key)
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("store upload: %w", err)
	}
	return &Result{Path: "/" + key, ContentType: f.ContentType, Size: info.Size, Filename: f.Filename}, nil
}
