package upload

import (
	"fmt"

	"karirkit/internal/config"
	"karirkit/internal/storage"
)

// New picks the uploader for cfg.Driver. store may be nil unless the driver
// is "minio".
func New(cfg config.UploadConfig, backend Backend, store storage.Storage) (Uploader, error) {
	switch cfg.Driver {
	case "", "api":
		return NewAPIUploader(backend, cfg.MaxBytes), nil
	case "minio":
		if store == nil {
			return nil, fmt.Errorf("upload driver minio requires object storage")
		}
		return NewObjectUploader(store, cfg.MaxBytes), nil
	}
	return nil, fmt.Errorf("unknown upload driver %q", cfg.Driver)
}
