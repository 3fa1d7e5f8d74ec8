package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"karirkit/internal/config"
)

func TestNewMinIO_RequiresSettings(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"endpoint", config.MinIOConfig{}, "minio endpoint is required"},
		{"credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "minio credentials are required"},
		{"bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "minio bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(ctx, tt.cfg)
			assert.Nil(t, s)
			assert.EqualError(t, err, tt.want)
		})
	}
}
